package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragonbear-os/router/pkg/render"
	"github.com/dragonbear-os/router/pkg/service"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Args:  cobra.NoArgs,
	Short: "Render the Service manifest",
	Long:  `Loads the values file and writes the rendered Service manifest as YAML.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringArray("set", []string{}, "override values (e.g., --set service.port=8080)")
	renderCmd.Flags().String("output", "", "write the manifest to a file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	setFlags, _ := cmd.Flags().GetStringArray("set")
	output, _ := cmd.Flags().GetString("output")

	logger := newLogger()

	vals, err := loadValues(logger, setFlags)
	if err != nil {
		return err
	}

	manifest := service.Build(vals)
	logger.Debug("Manifest assembled", "name", manifest.Metadata.Name, "ports", len(manifest.Spec.Ports))

	if output != "" {
		if err := render.ManifestToFile(output, manifest); err != nil {
			return fmt.Errorf("failed to render manifest: %w", err)
		}
		logger.Info("Manifest written", "path", output)
		return nil
	}

	return render.Manifest(cmd.OutOrStdout(), manifest)
}
