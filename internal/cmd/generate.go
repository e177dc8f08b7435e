package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/appforge/appforge/internal/export"
	"github.com/appforge/appforge/internal/orchestrator"
	"github.com/appforge/appforge/internal/spec"
)

var (
	generateOutput string
	generateDeploy bool
	generateText   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate [requirement-file]",
	Aliases: []string{"g"},
	Short:   "Generate an application from a requirement file",
	Long: `Generate frontend, backend and database code from a requirement file.

The requirement file is YAML or JSON (see 'appforge validate'). With --text
the file is treated as free-form text and run through the line parser instead.
Requirements without tables, endpoints or components fall back to a synthetic
default set.

Examples:
  appforge generate app.yaml
  appforge generate app.yaml --output ./out
  appforge generate app.yaml --deploy
  appforge generate notes.txt --text`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write generated files beneath this directory")
	generateCmd.Flags().BoolVar(&generateDeploy, "deploy", false, "Run the deployment steps after generation")
	generateCmd.Flags().BoolVar(&generateText, "text", false, "Treat the input as free-form text")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req, err := loadRequirement(args[0], generateText)
	if err != nil {
		return err
	}

	coordinator, registry, err := newCoordinator(ctx)
	if err != nil {
		return err
	}
	defer registry.ShutdownAll(ctx)

	var app *orchestrator.GeneratedApp
	if generateDeploy {
		app, err = coordinator.Orchestrate(ctx, req)
	} else {
		app, err = coordinator.Generate(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	octx, err := coordinator.Status(app.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s Generated %q (app %s, phase %s, status %s)\n",
		successMark, app.Name, app.ID, octx.Phase, app.Status)
	printBundleSummary(app)

	if app.Deployment.RepoURL != "" {
		fmt.Printf("%s Deployed to %s (branch %s)\n", successMark, app.Deployment.RepoURL, app.Deployment.Branch)
	}

	if generateOutput != "" {
		if err := export.Write(app, export.Options{Dir: generateOutput, Progress: os.Stdout}); err != nil {
			return err
		}
		fmt.Printf("\n%s Wrote files to %s\n", successMark, generateOutput)
	}

	return nil
}

// loadRequirement reads a requirement from disk, either structured or as
// free text.
func loadRequirement(path string, asText bool) (*spec.AppRequirement, error) {
	if !asText {
		return spec.Load(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return spec.ParseText(string(data)), nil
}

func printBundleSummary(app *orchestrator.GeneratedApp) {
	for _, bundle := range []struct {
		name  string
		files map[string]string
	}{
		{"database", app.Database},
		{"backend", app.Backend},
		{"frontend", app.Frontend},
	} {
		paths := make([]string, 0, len(bundle.files))
		for path := range bundle.files {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		fmt.Printf("  %s (%d files)\n", bundle.name, len(paths))
		for _, path := range paths {
			fmt.Printf("    %s\n", path)
		}
	}
}
