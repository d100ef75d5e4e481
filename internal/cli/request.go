package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
)

// loadRequest reads a diagram request from path. The format is picked
// by file extension: .json, .toml, and .yaml/.yml are supported. TOML
// and YAML payloads are normalized through JSON so all three formats
// share one decoding path.
func loadRequest(path string) (*diagram.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "request file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, err, "read request file")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return diagram.UnmarshalRequest(data)
	case ".toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, err, "parse TOML request")
		}
		return requestFromDoc(doc)
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, err, "parse YAML request")
		}
		return requestFromDoc(doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unsupported request format: %s", filepath.Ext(path))
	}
}

// requestFromDoc converts a decoded TOML/YAML document into a request
// by re-encoding it as JSON.
func requestFromDoc(doc map[string]any) (*diagram.Request, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, err, "normalize request")
	}
	return diagram.UnmarshalRequest(data)
}
