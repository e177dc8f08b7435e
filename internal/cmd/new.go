package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appforge/appforge/internal/spec"
	"github.com/appforge/appforge/internal/ui"
	"github.com/appforge/appforge/internal/xos"
)

var newOutput string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a requirement file interactively",
	Long: `Walk through name, description and features interactively and
write the answers to a requirement file ready for 'appforge generate'.

Examples:
  appforge new
  appforge new --file shop.yaml`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newOutput, "file", "app.yaml", "Requirement file to write")
}

func runNew(cmd *cobra.Command, args []string) error {
	name, err := ui.Input("App name", "", true)
	if err != nil {
		return err
	}
	description, err := ui.Input("Description", "", true)
	if err != nil {
		return err
	}
	features, err := ui.InputList("Feature", 1)
	if err != nil {
		return err
	}

	req := &spec.AppRequirement{
		Name:        name,
		Description: description,
		Features:    features,
	}

	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode requirement: %w", err)
	}

	if _, err := os.Stat(newOutput); err == nil {
		if !ui.Confirm(fmt.Sprintf("%s exists, overwrite", newOutput)) {
			fmt.Println(warnColor("aborted"))
			return nil
		}
	}

	if err := xos.WriteFile(newOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", newOutput, err)
	}

	fmt.Printf("%s Wrote %s - run 'appforge generate %s' to scaffold it\n", successMark, newOutput, newOutput)
	return nil
}
