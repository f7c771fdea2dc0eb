// Command iclc is the ICL compiler CLI: a thin cobra front-end over
// internal/service. Every subcommand maps 1:1 onto a façade method.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scientificaj/icl/internal/config"
	"github.com/scientificaj/icl/internal/pack/builtin"
	"github.com/scientificaj/icl/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "iclc",
	Short: "ICL compiler and toolchain",
	Long:  "iclc compiles Intent-oriented Compiler Language source into readable code for multiple target languages.",
}

func main() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("optimize", false, "run Intent Graph optimization before emitting")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(capabilitiesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds the façade around the builtin pack registry only;
// icl.toml is not consulted here.
func newService() (*service.Service, error) {
	registry, err := builtin.NewRegistry()
	if err != nil {
		return nil, err
	}
	return service.New(registry), nil
}

// loadDefaults reads icl.toml from the current directory, falling back to
// built-in defaults when none is found.
func loadDefaults() config.Config {
	cfg, ok, err := config.Load(".")
	if err != nil || !ok {
		return config.Default()
	}
	return cfg
}

func useColor(cmd *cobra.Command) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
