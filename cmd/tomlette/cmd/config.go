package cmd

import (
	"errors"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// ToolConfig is tomlette's own tool configuration, read from .tomlette.yaml
// in the current directory -- grounded on the teacher's sqlcode.yaml/Config
// (cli/cmd/config.go), retargeted from a database connection map to a
// default-flags/known-alias map (spec.md §10.3).
type ToolConfig struct {
	DefaultFile string            `yaml:"default_file"`
	Aliases     map[string]string `yaml:"aliases"`
	Overrides   map[string]string `yaml:"overrides"`
}

func loadToolConfig(dir string) (ToolConfig, error) {
	var result ToolConfig

	configFilename := path.Join(dir, ".tomlette.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return ToolConfig{}, nil
	}

	data, err := os.ReadFile(configFilename)
	if err != nil {
		return ToolConfig{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return ToolConfig{}, err
	}
	return result, nil
}

// resolveFile takes the flag value, or the config file's default_file when
// the flag is empty, and maps it through the known-alias map; a name with
// no alias is returned unchanged.
func resolveFile(cfg ToolConfig, flagValue string) (string, error) {
	if flagValue == "" {
		flagValue = cfg.DefaultFile
	}
	if alias, ok := cfg.Aliases[flagValue]; ok {
		return alias, nil
	}
	if flagValue == "" {
		return "", errors.New("no --file given and no default_file configured in .tomlette.yaml")
	}
	return flagValue, nil
}
