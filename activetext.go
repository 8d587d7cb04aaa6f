// Package activetext 在文本中识别 mention、hashtag、URL、自定义正则和 preview 替换
//
// 这个包是 active label 类组件的核心：渲染、点击和复制菜单由调用方负责，
// 本包只负责扫描文本、改写文本（URL 缩短、preview 替换）并给出最终文本上的
// UTF-16 区间。
//
// 处理顺序固定：
//  1. 每个 Preview 类型依次替换（按启用顺序）
//  2. URL 扫描与缩短，随后把 preview 区间平移到缩短后的文本
//  3. 其余类型（mention、hashtag、custom）在最终文本上扫描
//
// 示例：
//
//	res, err := activetext.Parse("Hello @bob and #world",
//	    activetext.WithTypes(activetext.Mention(), activetext.Hashtag()))
//	if err != nil {
//	    return err
//	}
//	for _, el := range res.Registry.All() {
//	    switch m := el.Matched.(type) {
//	    case activetext.MentionElement:
//	        // m.Handle == "bob"
//	    case activetext.HashtagElement:
//	        // m.Tag == "world"
//	    }
//	}
package activetext

// Parse 使用给定选项解析 text
//
// 参数：
//   - text: 原始文本
//   - opts: 启用类型、过滤器、URL 最大长度等选项；未指定时启用 mention、hashtag、url
//
// 返回：
//   - *Result: 最终文本和 element registry
//   - error: 自定义 pattern 无法编译时返回 *PatternError
func Parse(text string, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.Parse(text), nil
}

// Result is the output of one parse.
type Result struct {
	// Text is the final text after every substitution.
	Text     string
	Registry *Registry
}

// Entities returns every element as an Entity sorted by offset.
func (r *Result) Entities() []Entity {
	if r == nil || r.Registry == nil {
		return nil
	}
	return r.Registry.Entities()
}
