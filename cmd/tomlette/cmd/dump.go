package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/eidsvoll/tomlette/tomlette"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Parse the document and print its full structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return errors.New("--file is required")
		}
		doc, err := tomlette.ParseFile(file)
		if err != nil {
			logger.WithError(err).Error("failed to parse document")
			return err
		}
		for _, key := range doc.Keys() {
			v, _ := doc.Get(key)
			fmt.Printf("%s:\n", key)
			fmt.Println(repr.String(v, repr.Indent("  ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
