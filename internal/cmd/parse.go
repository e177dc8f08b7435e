package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appforge/appforge/internal/spec"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text-file]",
	Short: "Parse free-form text into a requirement",
	Long: `Run the free-text line parser over a file (or stdin when the
argument is "-") and print the resulting requirement as YAML. Only name,
description and features are ever extracted; tables, endpoints and
components must be supplied in a structured requirement file.

Examples:
  appforge parse notes.txt
  cat notes.txt | appforge parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	req := spec.ParseText(string(data))

	out, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode requirement: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
