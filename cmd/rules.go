package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-scorer/internal/scoring"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and manage rule sets",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rule-set JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		rules, err := scoring.LoadRuleSetFile(args[0])
		if err != nil {
			log.Fatalf("loading rule set: %v", err)
		}

		if err := rules.Validate(); err != nil {
			log.Fatalf("rule set is invalid: %v", err)
		}

		fmt.Printf("rule set %s is valid (version %s)\n", args[0], rules.Version)
	},
}

var rulesExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Print a rule-set file in canonical form, with defaults applied",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		rules, err := scoring.LoadRuleSetFile(args[0])
		if err != nil {
			log.Fatalf("loading rule set: %v", err)
		}

		engine, err := scoring.New(rules, nil)
		if err != nil {
			log.Fatalf("rule set is invalid: %v", err)
		}

		data, err := engine.ExportRules()
		if err != nil {
			log.Fatalf("exporting rule set: %v", err)
		}

		fmt.Println(string(data))
	},
}

var rulesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a rule-set template for a position",
	Run: func(cmd *cobra.Command, _ []string) {
		position := cmd.Flag("position").Value.String()

		data, err := json.MarshalIndent(scoring.DefaultRules(position), "", "  ")
		if err != nil {
			log.Fatalf("marshaling rule set: %v", err)
		}

		output := cmd.Flag("output").Value.String()
		if output == "" {
			fmt.Println(string(data))
			return
		}

		if err := os.WriteFile(output, data, 0o644); err != nil {
			log.Fatalf("writing rule set: %v", err)
		}

		fmt.Printf("wrote rule-set template to %s\n", output)
	},
}

func init() {
	rulesInitCmd.Flags().String("position", "前端工程师", "position title used in labels and description")
	rulesInitCmd.Flags().StringP("output", "o", "", "write the template to a file instead of stdout")

	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesExportCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rootCmd.AddCommand(rulesCmd)
}
