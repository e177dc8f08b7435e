package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appforge/appforge/internal/export"
	"github.com/appforge/appforge/internal/watch"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch [requirement-file]",
	Short: "Regenerate whenever the requirement file changes",
	Long: `Generate once, then keep watching the requirement file and
regenerate on every change until interrupted. Each run is tracked as its own
app in the session.

Examples:
  appforge watch app.yaml --output ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Write generated files beneath this directory")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	coordinator, registry, err := newCoordinator(ctx)
	if err != nil {
		return err
	}
	defer registry.ShutdownAll(ctx)

	path := args[0]

	regenerate := func() error {
		req, err := loadRequirement(path, false)
		if err != nil {
			return err
		}

		app, err := coordinator.Generate(ctx, req)
		if err != nil {
			return err
		}

		files := len(app.Database) + len(app.Backend) + len(app.Frontend)
		fmt.Printf("%s Regenerated %q (app %s, %d files)\n", successMark, app.Name, app.ID, files)

		if watchOutput != "" {
			return export.Write(app, export.Options{Dir: watchOutput, Progress: io.Discard})
		}
		return nil
	}

	if err := regenerate(); err != nil {
		fmt.Printf("%s %v\n", failureMark, err)
	}

	w, err := watch.New(path, watch.DefaultDebounce)
	if err != nil {
		return err
	}

	fmt.Printf("watching %s (ctrl-c to stop)\n", path)
	err = w.Run(ctx, regenerate, func(err error) {
		fmt.Printf("%s %v\n", failureMark, err)
	})
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\nsession generated %d app(s)\n", len(coordinator.ListAll()))
		return nil
	}
	return err
}
