package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// RCFile is the on-disk shape of an optional rc file, decoded as JSON or
// YAML by extension. Grounded on config/config.go's Config struct and its
// ReadFilename method; trimmed to the fields this Model actually consumes
// (theme palette, header lines, and the preview/delimiter defaults a user
// would otherwise have to repeat on every invocation).
type RCFile struct {
	Theme          Theme    `json:"Theme" yaml:"Theme"`
	HeaderLines    []string `json:"HeaderLines" yaml:"HeaderLines"`
	PreviewCommand string   `json:"PreviewCommand" yaml:"PreviewCommand"`
	PreviewWindow  string   `json:"PreviewWindow" yaml:"PreviewWindow"`
	Delimiter      string   `json:"Delimiter" yaml:"Delimiter"`
}

// LoadRCFile reads and decodes filename, picking the YAML decoder for
// ".yaml"/".yml" and the JSON decoder otherwise, exactly as
// config/config.go's ReadFilename dispatches by extension.
func LoadRCFile(filename string) (*RCFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open rc file %s", filename)
	}
	defer f.Close()

	rc := &RCFile{}
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(rc); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML rc file")
		}
	default:
		if err := json.NewDecoder(f).Decode(rc); err != nil {
			return nil, errors.Wrap(err, "failed to decode JSON rc file")
		}
	}
	return rc, nil
}

// Apply merges the rc file's settings into c. CLI flags are applied after
// Apply so that explicit flags always win over the rc file, matching
// peco's precedence (flags override config file).
func (rc *RCFile) Apply(c *Config) {
	if rc.Theme != nil {
		c.Theme = rc.Theme
	}
	if len(rc.HeaderLines) > 0 {
		c.HeaderLines = rc.HeaderLines
	}
	if rc.PreviewCommand != "" {
		c.PreviewCommand = rc.PreviewCommand
	}
	if rc.PreviewWindow != "" {
		if w, err := ParsePreviewWindow(rc.PreviewWindow); err == nil {
			c.PreviewWindow = w
		}
	}
	if rc.Delimiter != "" {
		c.SetDelimiter(rc.Delimiter)
	}
}

var rcFilenames = []string{"config.json", "config.yaml", "config.yml"}

// LocateRCFile searches dir for one of the known rc filenames, grounded on
// config/config.go's DefaultConfigLocator.
func LocateRCFile(dir string) (string, error) {
	for _, basename := range rcFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", fmt.Errorf("rc file not found in %s", dir)
}
