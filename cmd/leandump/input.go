package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/twitnic/lean/dump"
)

type options struct {
	depth   int
	methods bool
	sorted  bool
	wrap    bool
	color   string
	format  string
	config  string
	files   []string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("leandump", flag.ContinueOnError)
	fs.IntVar(&opts.depth, "depth", 0, "recursion budget (0 keeps the configured default)")
	fs.BoolVar(&opts.methods, "methods", false, "list callable members of objects")
	fs.BoolVar(&opts.sorted, "sort", false, "sort members tier-major, name-minor")
	fs.BoolVar(&opts.wrap, "wrap", false, "enclose each dump in a delimited block")
	fs.StringVar(&opts.color, "color", "", "color tag for wrapped output")
	fs.StringVar(&opts.format, "format", "", "input format: toml, yaml or json (default: by extension)")
	fs.StringVar(&opts.config, "config", "", "prototype configuration file (TOML)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.files = fs.Args()
	return opts, nil
}

func (o options) session() (*dump.Session, error) {
	var s *dump.Session
	if o.config != "" {
		cfg, err := dump.LoadPrototypeConfig(o.config)
		if err != nil {
			return nil, err
		}
		s = cfg.Session()
	} else {
		s = dump.New()
	}
	if o.depth > 0 {
		s.Depth(o.depth)
	}
	s.ShowMethods(o.methods).Sorted(o.sorted)
	if o.wrap {
		s.Wrap(true)
	}
	if o.color != "" {
		s.Color(o.color)
	}
	return s, nil
}

func run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	s, err := opts.session()
	if err != nil {
		return err
	}

	files := opts.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, path := range files {
		v, err := parseDocument(path, opts.format)
		if err != nil {
			return err
		}
		log.Debug().Str("file", path).Msg("leandump: parsed document")
		if err := s.Labels(path).Render(v); err != nil {
			return err
		}
	}
	return nil
}

func parseDocument(path, format string) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return decodeDocument(data, documentFormat(path, format))
}

// documentFormat resolves the input format: an explicit flag wins, otherwise
// the file extension decides, defaulting to json for stdin and unknowns.
func documentFormat(path, format string) string {
	if format != "" {
		return strings.ToLower(strings.TrimSpace(format))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func decodeDocument(data []byte, format string) (any, error) {
	switch format {
	case "toml":
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		return v, nil
	case "yaml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return v, nil
	case "json":
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
