package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokentools/tokendiff/internal/utils"
	"github.com/tokentools/tokendiff/pkg/extract"
)

// extractCmd implements: tokendiff extract
//
// Harvests a token document from a saved HTML page. The output is the same
// JSON shape `compare` consumes, so the two commands chain naturally.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a token document from a saved HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, _ := cmd.Flags().GetString("in")
		outPath, _ := cmd.Flags().GetString("out")
		pretty, _ := cmd.Flags().GetBool("pretty")

		if _, err := os.Stat(inPath); err != nil {
			return fmt.Errorf("html file not found: %s", inPath)
		}

		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := extract.FromHTML(f)
		if err != nil {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		utils.Log.Infof("Extracted %d palette colors, %d font families, %d spacing values, %d radius values",
			len(doc.Colors.Palette), len(doc.Typography.FontFamilies), len(doc.Spacing.Scale), len(doc.BorderRadius))

		var out []byte
		if pretty {
			out, err = json.MarshalIndent(doc, "", "  ")
		} else {
			out, err = json.Marshal(doc)
		}
		if err != nil {
			return err
		}
		out = append(out, '\n')

		if outPath == "" {
			_, err := os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(outPath, out, 0644)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().String("in", "", "Path to the saved HTML page")
	extractCmd.Flags().StringP("out", "o", "", "Write the token document to a file instead of stdout")
	extractCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	extractCmd.MarkFlagRequired("in")
}
