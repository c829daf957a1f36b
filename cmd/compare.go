package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tokentools/tokendiff/internal/utils"
	"github.com/tokentools/tokendiff/pkg/compare"
	"github.com/tokentools/tokendiff/pkg/report"
	"github.com/tokentools/tokendiff/pkg/tokens"
)

// compareCmd implements: tokendiff compare
//
// Loads two token documents, scores the project against the reference and
// renders the report. With --watch the comparison re-runs whenever either
// input file changes.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare project tokens against a reference set",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command: '%s'. See 'tokendiff compare --help'", args[0])
		}

		projectPath, _ := cmd.Flags().GetString("project")
		referencePath, _ := cmd.Flags().GetString("reference")
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		failUnder, _ := cmd.Flags().GetInt("fail-under")
		watch, _ := cmd.Flags().GetBool("watch")

		for _, path := range []string{projectPath, referencePath} {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("token document not found: %s", path)
			}
		}

		switch format {
		case "text", "markdown", "json":
		default:
			return fmt.Errorf("unknown format: '%s'. Available: text, markdown, json", format)
		}

		rep, err := runCompare(projectPath, referencePath, format, outPath)
		if err != nil {
			return err
		}

		if watch {
			// The process never exits on its own in watch mode, so
			// --fail-under only applies to one-shot runs.
			utils.Log.Infof("Watching %s and %s for changes", projectPath, referencePath)
			return watchFiles([]string{projectPath, referencePath}, func() {
				if _, err := runCompare(projectPath, referencePath, format, outPath); err != nil {
					utils.Log.Errorf("Comparison failed: %v", err)
				}
			})
		}

		if failUnder > 0 && rep.Overall < failUnder {
			return fmt.Errorf("overall score %d/100 is below the required %d", rep.Overall, failUnder)
		}
		return nil
	},
}

// runCompare executes one full comparison and renders the report.
func runCompare(projectPath, referencePath, format, outPath string) (report.Report, error) {
	project, err := loadDocument(projectPath)
	if err != nil {
		return report.Report{}, err
	}
	reference, err := loadDocument(referencePath)
	if err != nil {
		return report.Report{}, err
	}

	rep := compare.Run(project, reference, compare.Options{
		ColorDelta:       viper.GetFloat64("match.color_delta"),
		NumericTolerance: viper.GetFloat64("match.numeric_tolerance"),
		ColorWeight:      viper.GetFloat64("match.color_weight"),
		NumericWeight:    viper.GetFloat64("match.numeric_weight"),
		Log:              utils.Log,
	})

	if err := writeReport(rep, format, outPath); err != nil {
		return report.Report{}, err
	}
	return rep, nil
}

func loadDocument(path string) (*tokens.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := tokens.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func writeReport(rep report.Report, format, outPath string) error {
	var rendered []byte
	switch format {
	case "json":
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		rendered = append(out, '\n')
	case "markdown":
		var buf bytes.Buffer
		if err := report.WriteMarkdown(&buf, rep); err != nil {
			return err
		}
		rendered = buf.Bytes()
	default:
		rendered = []byte(report.Render(rep))
	}

	if outPath == "" {
		_, err := os.Stdout.Write(rendered)
		return err
	}
	return os.WriteFile(outPath, rendered, 0644)
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().String("project", "", "Path to the project token document (JSON)")
	compareCmd.Flags().String("reference", "", "Path to the reference token document (JSON)")
	compareCmd.Flags().StringP("format", "f", "text", "Report format. Available: text, markdown, json")
	compareCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	compareCmd.Flags().Int("fail-under", 0, "Exit non-zero when the overall score is below N (0 disables)")
	compareCmd.Flags().BoolP("watch", "w", false, "Re-run the comparison when an input file changes")
	compareCmd.Flags().Float64("color-delta", 5.0, "CIEDE2000 distance below which colors count as similar")
	compareCmd.Flags().Float64("numeric-tolerance", 2.0, "Numeric difference within which spacing/radius values count as similar")
	viper.BindPFlag("match.color_delta", compareCmd.Flags().Lookup("color-delta"))
	viper.BindPFlag("match.numeric_tolerance", compareCmd.Flags().Lookup("numeric-tolerance"))
	compareCmd.MarkFlagRequired("project")
	compareCmd.MarkFlagRequired("reference")
}
