package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gohead/head/extract"
	"gohead/head/validate"
)

// document is the on-disk shape of a YAML or JSON head definition: a mapping
// whose script key lists attribute mappings, one per script element.
type document struct {
	Script []map[string]any `yaml:"script" json:"script"`
}

// loadScripts reads the script attribute mappings out of path. HTML files are
// parsed and their head extracted; YAML and JSON files are decoded as head
// definition documents. The format is picked by file extension.
func loadScripts(path string) ([]validate.AttrMap, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return loadHTML(path)
	case ".yaml", ".yml":
		return loadDocument(path, yaml.Unmarshal)
	case ".json":
		return loadDocument(path, json.Unmarshal)
	default:
		return nil, errors.Errorf("%s: unsupported input format (want .html, .yaml or .json)", path)
	}
}

func loadHTML(path string) ([]validate.AttrMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	head, err := extract.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "extracting head from %s", path)
	}
	attrs := make([]validate.AttrMap, len(head.Script))
	for i := range head.Script {
		attrs[i] = head.Script[i].AttrMap()
	}
	return attrs, nil
}

func loadDocument(path string, unmarshal func([]byte, any) error) ([]validate.AttrMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	var doc document
	if err := unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	attrs := make([]validate.AttrMap, len(doc.Script))
	for i, m := range doc.Script {
		attrs[i] = m
	}
	return attrs, nil
}
