package cmd

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/denis-bt/sync-core-visualization/internal/output"
)

const (
	formatHTML = "html"
	formatJSON = "json"
)

// settings is the merged view of flags, environment and config file.
type settings struct {
	Output  string
	Format  string
	Summary bool
	HTML    output.HTMLOptions
}

func bind(fs *pflag.FlagSet, key, flag string) {
	if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

func loadSettings() (settings, error) {
	s := settings{
		Output:  viper.GetString("output"),
		Format:  strings.ToLower(viper.GetString("format")),
		Summary: viper.GetBool("summary"),
		HTML:    output.DefaultHTMLOptions(),
	}

	switch s.Format {
	case "", formatHTML:
		s.Format = formatHTML
		if s.Output == "" {
			s.Output = "out.html"
		}
	case formatJSON:
		if s.Output == "" {
			s.Output = "out.json"
		}
	default:
		return s, errors.Newf("unknown output format %q", s.Format)
	}

	if v := viper.GetString("title"); v != "" {
		s.HTML.Title = v
	}
	if v := viper.GetString("height"); v != "" {
		s.HTML.Height = v
	}
	if v := viper.GetString("theme"); v != "" {
		s.HTML.Theme = v
	}
	s.HTML.AssetsHost = viper.GetString("assets_host")
	return s, nil
}

func (s settings) renderer() output.Renderer {
	if s.Format == formatJSON {
		return output.NewJSONRenderer()
	}
	return output.NewHTMLRenderer(s.HTML)
}
