package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eidsvoll/tomlette/tomlette"
)

// printValue renders a scalar value the way a shell user would want to
// consume it: each kind's own textual form, with no tomlette-specific
// quoting or type tagging.
func printValue(v tomlette.Value) (string, error) {
	switch v.Kind().String() {
	case "string":
		s, _ := v.AsString()
		return s, nil
	case "integer":
		i, _ := v.AsInteger()
		return fmt.Sprintf("%d", i), nil
	case "float":
		f, _ := v.AsFloat()
		return fmt.Sprintf("%g", f), nil
	case "bool":
		b, _ := v.AsBool()
		return fmt.Sprintf("%t", b), nil
	case "offset-date-time", "local-date-time", "local-date", "local-time":
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("key names a %s, not a scalar value; use dump to inspect it", v.Kind())
	}
}

var getCmd = &cobra.Command{
	Use:   "get <dotted.key.path>",
	Short: "Print the value at a dotted key path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return errors.New("--file is required")
		}
		doc, err := tomlette.ParseFile(file)
		if err != nil {
			logger.WithError(err).Error("failed to parse document")
			return err
		}
		v, ok := doc.Lookup(args[0])
		if !ok {
			return fmt.Errorf("key %q not found", args[0])
		}
		out, err := printValue(v)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
