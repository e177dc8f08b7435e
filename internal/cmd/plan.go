package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planText bool

var planCmd = &cobra.Command{
	Use:   "plan [requirement-file]",
	Short: "Validate a requirement and show the planning result",
	Long: `Run the planning step only: allocate an app id, validate the
requirement, and report every validation problem. Planning never fails
outright - problems are listed, not raised.

Examples:
  appforge plan app.yaml
  appforge plan notes.txt --text`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planText, "text", false, "Treat the input as free-form text")
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, err := loadRequirement(args[0], planText)
	if err != nil {
		return err
	}

	coordinator, registry, err := newCoordinator(cmd.Context())
	if err != nil {
		return err
	}
	defer registry.ShutdownAll(cmd.Context())

	octx := coordinator.Plan(req)

	fmt.Printf("app %s (phase %s)\n", octx.AppID, octx.Phase)
	if len(octx.Errors) == 0 {
		fmt.Printf("%s Requirement %q is ready to generate\n", successMark, req.Name)
		return nil
	}

	fmt.Printf("%s Requirement has %d problem(s):\n", failureMark, len(octx.Errors))
	for _, msg := range octx.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	return fmt.Errorf("planning found %d problem(s)", len(octx.Errors))
}
