package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	at "github.com/riverfjs/activetext-go"
)

type config struct {
	ConfigPath string
	Text       string
	FilePath   string
	Markdown   bool
	MaxURL     int
	Types      string
	LogLevel   string
}

type entity struct {
	at.Entity
	Href string `json:"href,omitempty"`
}

type output struct {
	Text     string   `json:"text"`
	Entities []entity `json:"entities"`
}

func main() {
	var cfg config
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML config file")
	flag.StringVar(&cfg.Text, "text", "", "Text to parse (default: read -file or stdin)")
	flag.StringVar(&cfg.FilePath, "file", "", "Path to a file holding the text")
	flag.BoolVar(&cfg.Markdown, "markdown", false, "Flatten the input as Markdown before parsing")
	flag.IntVar(&cfg.MaxURL, "max-url", -1, "Trim URLs longer than this many UTF-16 units (overrides config; 0 disables)")
	flag.StringVar(&cfg.Types, "types", "", "Comma-separated built-in types to enable, e.g. mention,url (overrides config)")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", cfg.LogLevel)
		os.Exit(2)
	}
	at.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger())

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		at.Logger.Error().Err(err).Msg("activetext failed")
		os.Exit(1)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	text, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	e, err := at.New(opts...)
	if err != nil {
		return err
	}
	var res *at.Result
	if cfg.Markdown {
		res = e.ParseMarkdown(text)
	} else {
		res = e.Parse(text)
	}

	out := output{Text: res.Text, Entities: []entity{}}
	for _, ent := range res.Entities() {
		item := entity{Entity: ent}
		if ent.Type == at.KindURL.String() {
			if u, err := at.LinkURL(ent.Value); err == nil {
				item.Href = u.String()
			} else {
				at.Logger.Warn().Err(err).Str("url", ent.Value).Msg("cannot build link")
			}
		}
		out.Entities = append(out.Entities, item)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func buildOptions(cfg config) ([]at.Option, error) {
	var opts []at.Option
	if cfg.ConfigPath != "" {
		fc, err := at.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fc.Options()...)
	}
	if cfg.Types != "" {
		types, err := parseTypes(cfg.Types)
		if err != nil {
			return nil, err
		}
		// built-ins are replaced, configured custom and preview types stay
		opts = append(opts, keepPatternTypes(types))
	}
	if cfg.MaxURL >= 0 {
		opts = append(opts, at.WithURLMaximumLength(cfg.MaxURL))
	}
	return opts, nil
}

func parseTypes(list string) ([]at.ElementType, error) {
	var types []at.ElementType
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(name) {
		case "mention":
			types = append(types, at.Mention())
		case "hashtag":
			types = append(types, at.Hashtag())
		case "url":
			types = append(types, at.URL())
		case "":
		default:
			return nil, fmt.Errorf("unknown type %q", name)
		}
	}
	return types, nil
}

func keepPatternTypes(builtins []at.ElementType) at.Option {
	return func(o *at.Options) {
		types := append([]at.ElementType(nil), builtins...)
		for _, t := range o.Types {
			if t.Kind == at.KindCustom || t.Kind == at.KindPreview {
				types = append(types, t)
			}
		}
		o.Types = types
	}
}

func readInput(cfg config, stdin io.Reader) (string, error) {
	switch {
	case cfg.Text != "":
		return cfg.Text, nil
	case cfg.FilePath != "":
		b, err := os.ReadFile(cfg.FilePath)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
