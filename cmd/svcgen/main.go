package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	valuesFile string
	verbose    bool
	version    = "dev" // Will be set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "svcgen",
	Short: "Render the Kubernetes Service manifest for a router deployment",
	Long: `svcgen turns a layered values file describing a GraphQL router deployment
into the Service manifest exposing its traffic, health and metrics
endpoints. Ports are resolved from the router's own listen addresses,
with documented fallbacks when the configuration omits them.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&valuesFile, "values", "", "values file (default is ./values.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
}

// Commands are defined in separate files:
// - renderCmd in render.go
// - validateCmd in validate.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
