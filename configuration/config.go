// Package configuration loads enrichment settings from YAML or JSON files
// and applies them to a LoggerConfiguration through named enricher
// factories.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/enrichgo/enrich/core"
)

// Configuration is the root settings object.
type Configuration struct {
	Enrichment EnrichmentSettings `yaml:"enrichment" json:"Enrichment"`
}

// EnrichmentSettings describes the enrichers and fixed properties to
// register.
type EnrichmentSettings struct {
	// Enrich lists enricher names registered without arguments.
	Enrich []string `yaml:"enrich" json:"Enrich,omitempty"`

	// EnrichWith lists enrichers registered with arguments.
	EnrichWith []EnricherConfiguration `yaml:"enrichWith" json:"EnrichWith,omitempty"`

	// Properties are fixed name/value properties applied to every event.
	Properties map[string]any `yaml:"properties" json:"Properties,omitempty"`

	// Destructure names the entries of Properties whose values are
	// structurally decomposed instead of rendered flat.
	Destructure []string `yaml:"destructure" json:"Destructure,omitempty"`
}

// EnricherConfiguration is a named enricher with arguments and an optional
// minimum level gate.
type EnricherConfiguration struct {
	Name  string         `yaml:"name" json:"Name"`
	Args  map[string]any `yaml:"args" json:"Args,omitempty"`
	Level string         `yaml:"level" json:"Level,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file, decided by the
// file extension.
func LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return LoadFromJSON(data)
	default:
		return LoadFromYAML(data)
	}
}

// LoadFromYAML loads configuration from YAML data.
func LoadFromYAML(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Configuration, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &config, nil
}

// ParseLevel parses a log level string.
func ParseLevel(levelStr string) (core.LogEventLevel, error) {
	switch strings.ToLower(levelStr) {
	case "verbose", "vrb":
		return core.VerboseLevel, nil
	case "debug", "dbg":
		return core.DebugLevel, nil
	case "information", "info", "inf":
		return core.InformationLevel, nil
	case "warning", "warn", "wrn":
		return core.WarningLevel, nil
	case "error", "err":
		return core.ErrorLevel, nil
	case "fatal", "ftl":
		return core.FatalLevel, nil
	default:
		return core.InformationLevel, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// GetString gets a string value from configuration args.
func GetString(args map[string]any, key string, defaultValue string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetBool gets a bool value from configuration args.
func GetBool(args map[string]any, key string, defaultValue bool) bool {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			return strings.EqualFold(val, "true")
		}
	}
	return defaultValue
}

// GetInt gets an int value from configuration args. JSON numbers arrive as
// float64 and are converted.
func GetInt(args map[string]any, key string, defaultValue int) int {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				return i
			}
		}
	}
	return defaultValue
}
