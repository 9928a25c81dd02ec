package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// HandleOutput renders result on the command's stdout according to the
// template or format flag
func HandleOutput(cmd *cobra.Command, result interface{}) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	default:
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// AddOutputFlags registers the shared --template and --format flags on
// commands that render through HandleOutput.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.name}}')")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json' or 'yaml'")
}
