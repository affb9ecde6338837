package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eidsvoll/tomlette/tomlette"
)

var setOverrides []string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse the document and report success or the first error found",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return errors.New("--file is required")
		}
		doc, err := tomlette.ParseFile(file)
		if err != nil {
			logger.WithError(err).Error("document is invalid")
			fmt.Println(err.Error())
			return err
		}

		overrides, err := mergedOverrides(toolConfig, setOverrides)
		if err != nil {
			return err
		}
		for path, val := range overrides {
			if err := doc.Override(path, val); err != nil {
				logger.WithError(err).WithField("path", path).Error("--set override rejected")
				return err
			}
		}

		fmt.Printf("%s is valid (%d top-level keys, %d override(s) applied)\n", file, doc.Len(), len(overrides))
		return nil
	},
}

// mergedOverrides combines .tomlette.yaml's default overrides with this
// invocation's --set flags, the latter taking precedence on key collision,
// and parses each "path=value" pair.
func mergedOverrides(cfg ToolConfig, flags []string) (map[string]string, error) {
	merged := make(map[string]string, len(cfg.Overrides)+len(flags))
	for path, val := range cfg.Overrides {
		merged[path] = val
	}
	for _, raw := range flags {
		path, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: expected path=value", raw)
		}
		merged[path] = val
	}
	return merged, nil
}

func init() {
	validateCmd.Flags().StringArrayVar(&setOverrides, "set", nil, "path=value override applied after parsing, may be repeated")
	rootCmd.AddCommand(validateCmd)
}
