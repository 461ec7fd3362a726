package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format int

// These are the supported formats.
const (
	TOML Format = iota
	YAML
)

// FormatOf picks the format by file extension, toml unless it is .yaml or
// .yml.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// FromFile initializes a Config object from a file.
func FromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "config: failed to open config file")
	}
	defer file.Close()

	c, err := FromReader(file, FormatOf(filename))
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", filename)
	}
	c.filename = filename
	return c, nil
}

// FromString initializes a Config object from a toml string.
func FromString(str string) (*Config, error) {
	return FromReader(strings.NewReader(str), TOML)
}

// FromReader initializes a Config object from a reader.
func FromReader(reader io.Reader, format Format) (*Config, error) {
	c := New()

	switch format {
	case YAML:
		values := make(map[string]interface{})
		if err := yaml.NewDecoder(reader).Decode(&values); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "config: failed to decode yaml")
		}
		c.values = intfToMp(normalize(values))
	default:
		values := make(map[string]interface{})
		if _, err := toml.NewDecoder(reader).Decode(&values); err != nil {
			return nil, errors.Wrap(err, "config: failed to decode toml")
		}
		c.values = values
	}

	return c, nil
}

// normalize turns yaml's lists of maps into the []map[string]interface{}
// that toml produces for arrays of tables.
func normalize(intf interface{}) interface{} {
	switch v := intf.(type) {
	case map[string]interface{}:
		for key, val := range v {
			v[key] = normalize(val)
		}
		return v
	case []interface{}:
		maps := make([]map[string]interface{}, 0, len(v))
		for i, val := range v {
			v[i] = normalize(val)
			if m, ok := v[i].(map[string]interface{}); ok {
				maps = append(maps, m)
			}
		}
		if len(v) > 0 && len(maps) == len(v) {
			return maps
		}
		return v
	}
	return intf
}

// ToWriter writes the config out as toml.
func (c *Config) ToWriter(writer io.Writer) error {
	c.protect.RLock()
	defer c.protect.RUnlock()

	return errors.Wrap(toml.NewEncoder(writer).Encode(c.values),
		"config: failed to encode toml")
}

// ToFile writes the config out as toml to a file.
func (c *Config) ToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "config: failed to create config file")
	}

	if err = c.ToWriter(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
