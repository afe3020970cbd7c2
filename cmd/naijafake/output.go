package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/naijafake/pkg/filter"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

// printer writes generated values one per line (text, json) or one per
// document (yaml).
type printer struct {
	w      io.Writer
	format string
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, format: format}
	if format == formatYAML {
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	}
	return p
}

func (p *printer) print(v any) error {
	switch p.format {
	case formatJSON:
		return json.NewEncoder(p.w).Encode(v)
	case formatYAML:
		return p.yaml.Encode(v)
	}

	switch t := v.(type) {
	case string:
		_, err := fmt.Fprintln(p.w, t)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(p.w, t.String())
		return err
	case filter.Record:
		if name := t.Field("name"); name != "" {
			_, err := fmt.Fprintln(p.w, name)
			return err
		}
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, string(out))
	return err
}

func (p *printer) close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
