package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the registered tool providers",
	Long: `List the default tool provider lineup with each provider's
operation menu.

Examples:
  appforge providers
  appforge providers health`,
	RunE: runProviders,
}

var providersHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe every provider's liveness",
	RunE:  runProvidersHealth,
}

func init() {
	providersCmd.AddCommand(providersHealthCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	_, registry, err := newCoordinator(cmd.Context())
	if err != nil {
		return err
	}
	defer registry.ShutdownAll(cmd.Context())

	for _, name := range registry.ListProviders() {
		fmt.Println(name)

		p, ok := registry.Get(name)
		if !ok {
			continue
		}
		operations := p.Operations()
		ops := make([]string, 0, len(operations))
		for op := range operations {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		for _, op := range ops {
			fmt.Printf("  %s\n", op)
		}
	}
	return nil
}

func runProvidersHealth(cmd *cobra.Command, args []string) error {
	_, registry, err := newCoordinator(cmd.Context())
	if err != nil {
		return err
	}
	defer registry.ShutdownAll(cmd.Context())

	health := registry.HealthCheckAll()

	names := registry.ListProviders()
	allHealthy := true
	for _, name := range names {
		mark := successMark
		if !health[name] {
			mark = failureMark
			allHealthy = false
		}
		fmt.Printf("%s %s\n", mark, name)
	}

	if !allHealthy {
		return fmt.Errorf("one or more providers are unhealthy")
	}
	return nil
}
