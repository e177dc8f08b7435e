package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appforge/appforge/internal/spec"
)

var validateCmd = &cobra.Command{
	Use:   "validate [requirement-file]",
	Short: "Validate a requirement file",
	Long: `Validate a YAML or JSON requirement file against the requirement
schema, including the semantic rules the schema cannot express (unique
method+path pairs, component/endpoint coupling).

Examples:
  appforge validate app.yaml
  appforge validate app.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	req, err := spec.Load(args[0])
	if err != nil {
		fmt.Printf("%s %s\n", failureMark, err)
		return fmt.Errorf("validation failed")
	}

	fmt.Printf("%s %s is valid (%d tables, %d endpoints, %d components)\n",
		successMark, args[0], len(req.Tables), len(req.Endpoints), len(req.Components))
	return nil
}
