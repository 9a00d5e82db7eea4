// Package dashboard renders the Grafana dashboard for the GreptimeDB plan tables.
package dashboard

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"mission-copilot/internal/output"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Options selects the tables the panels query.
type Options struct {
	TrackTable   string
	SummaryTable string
}

func (o Options) withDefaults() Options {
	if o.TrackTable == "" {
		o.TrackTable = output.DefaultTrackTable
	}
	if o.SummaryTable == "" {
		o.SummaryTable = output.DefaultSummaryTable
	}
	return o
}

var funcMap = template.FuncMap{
	"env": func(key string) (string, error) {
		v := os.Getenv(key)
		if v == "" {
			return "", fmt.Errorf("environment variable %s not set", key)
		}
		return v, nil
	},
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

func parse() (*template.Template, error) {
	return template.New("dashboards").Funcs(funcMap).ParseFS(templates, "templates/*.tmpl")
}

// Render writes every embedded dashboard into outDir and returns the paths written.
func Render(outDir string, opts Options) ([]string, error) {
	t, err := parse()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, tpl := range t.Templates() {
		if !strings.HasSuffix(tpl.Name(), ".tmpl") {
			continue
		}
		outPath := filepath.Join(outDir, strings.TrimSuffix(tpl.Name(), ".tmpl"))
		f, err := os.Create(outPath)
		if err != nil {
			return written, err
		}
		if err := tpl.Execute(f, opts.withDefaults()); err != nil {
			f.Close()
			return written, err
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, outPath)
	}
	return written, nil
}

// RenderTo writes the named dashboard to w.
func RenderTo(w io.Writer, name string, opts Options) error {
	t, err := parse()
	if err != nil {
		return err
	}
	tpl := t.Lookup(name + ".tmpl")
	if tpl == nil {
		return fmt.Errorf("unknown dashboard %q", name)
	}
	return tpl.Execute(w, opts.withDefaults())
}
