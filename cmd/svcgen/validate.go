package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragonbear-os/router/pkg/values"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Validate a values file without rendering",
	Long:  `Loads the values file and reports validation errors and warnings.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	vals, err := values.Load(valuesFile)
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}

	v := values.NewValidator()
	validateErr := v.Validate(vals)
	fmt.Fprint(cmd.OutOrStdout(), v.Report())

	return validateErr
}
