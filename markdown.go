package activetext

import "github.com/riverfjs/activetext-go/internal/markdown"

// Flatten 把 Markdown 转成纯文本（去掉格式标记，保留可见文字）
//
// 链接只保留显示文字，autolink 保留 URL 本身；代码块原样输出。
func Flatten(md string) string {
	return markdown.Flatten(md)
}

// ParseMarkdown flattens md and parses the resulting text.
func ParseMarkdown(md string, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return e.ParseMarkdown(md), nil
}

// ParseMarkdown flattens md and parses the resulting text.
func (e *Extractor) ParseMarkdown(md string) *Result {
	text := markdown.Flatten(md)
	Logger.Debug().Int("markdown_len", len(md)).Int("text_len", len(text)).Msg("flattened markdown")
	return e.Parse(text)
}
