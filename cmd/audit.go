package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokentools/tokendiff/pkg/wcag"
)

// auditCmd implements: tokendiff audit
//
// Runs the WCAG contrast audit on one document's semantic palette without
// needing a reference set.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a token document's palette for WCAG contrast issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectPath, _ := cmd.Flags().GetString("project")
		asJSON, _ := cmd.Flags().GetBool("json")

		if _, err := os.Stat(projectPath); err != nil {
			return fmt.Errorf("token document not found: %s", projectPath)
		}
		doc, err := loadDocument(projectPath)
		if err != nil {
			return err
		}

		semantic := doc.Colors.Semantic
		audit := wcag.AuditPalette(semantic.Backgrounds, semantic.Text, semantic.Accents)

		if asJSON {
			out, err := json.MarshalIndent(audit, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		for _, f := range audit.Issues {
			fmt.Printf("%-7s  %s on %s  ratio %.2f:1  AA=%t AAA=%t\n", f.Severity, f.Foreground, f.Background, f.Ratio, f.PassesAA, f.PassesAAA)
		}
		for _, f := range audit.Passing {
			fmt.Printf("%-7s  %s on %s  ratio %.2f:1  AA=%t AAA=%t\n", "ok", f.Foreground, f.Background, f.Ratio, f.PassesAA, f.PassesAAA)
		}
		fmt.Printf("%d errors, %d warnings, %d passing\n", audit.ErrorCount(), audit.WarningCount(), len(audit.Passing))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().String("project", "", "Path to the token document (JSON)")
	auditCmd.Flags().Bool("json", false, "Emit the audit as JSON")
	auditCmd.MarkFlagRequired("project")
}
