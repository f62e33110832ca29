package settings

import (
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/plumekit/plume/config/site"
	"github.com/plumekit/plume/utils"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatPelican Format = "pelican"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPelican, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pelican, json or yaml)", s)
	}
}

func DefaultFilename(f Format) string {
	switch f {
	case FormatJSON:
		return "settings.json"
	case FormatYAML:
		return "settings.yaml"
	default:
		return "pelicanconf.py"
	}
}

func Render(rec *site.Record, f Format) ([]byte, error) {
	switch f {
	case FormatPelican:
		return RenderPelican(rec), nil
	case FormatJSON:
		return RenderJSON(rec)
	case FormatYAML:
		return RenderYAML(rec)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// RenderJSON marshals the contract as an object. Key order follows
// encoding/json (sorted), which keeps the bytes stable.
func RenderJSON(rec *site.Record) ([]byte, error) {
	obj := make(map[string]any)
	for _, s := range Build(rec) {
		obj[s.Key] = s.Value
	}
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RenderYAML emits the contract as a YAML mapping in canonical order.
func RenderYAML(rec *site.Record) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range Build(rec) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: s.Key}
		val := &yaml.Node{}
		if s.Value == nil {
			val.Kind = yaml.ScalarNode
			val.Tag = "!!null"
			val.Value = "null"
		} else if err := val.Encode(s.Value); err != nil {
			return nil, err
		}
		doc.Content = append(doc.Content, key, val)
	}
	return yaml.Marshal(doc)
}

// Write lands the rendered contract atomically so a build kicked off
// mid-export never sees a half-written settings file.
func Write(path string, data []byte) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0o644)
}
