package schemaconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
	"github.com/markojukic/jsongen"
)

// Load reads a schema description from path, JSON or YAML depending on
// its extension (.json vs .yaml/.yml), and builds the jsongen.Node tree
// it describes. It returns a fresh jsongen.Session ready for use with
// jsongen.Generate, alongside the root node.
func Load(path string) (*jsongen.Session, jsongen.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("schemaconfig: reading %s: %w", path, err)
	}

	jsonData, err := normalizeToJSON(path, data)
	if err != nil {
		return nil, nil, err
	}

	var cfg nodeConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, nil, fmt.Errorf("schemaconfig: decoding %s: %w", path, err)
	}

	root, err := cfg.toNode()
	if err != nil {
		return nil, nil, fmt.Errorf("schemaconfig: %s: %w", path, err)
	}

	return jsongen.NewSession(), root, nil
}

// normalizeToJSON returns data unchanged for a .json path. For a
// .yaml/.yml path it decodes data into a generic value with
// github.com/goccy/go-yaml and re-encodes it with
// github.com/go-json-experiment/json, so both formats converge on one
// nodeConfig decode step.
func normalizeToJSON(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return data, nil
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("schemaconfig: parsing YAML %s: %w", path, err)
		}
		out, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("schemaconfig: re-encoding YAML %s as JSON: %w", path, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}
