package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/service"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [path]",
	Short: "Compile ICL source to one or more target languages",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringSlice("target", nil, "target language(s) to emit (repeatable or comma-separated)")
	compileCmd.Flags().String("out", "", "output path or directory for the emitted bundle")
}

func runCompile(cmd *cobra.Command, args []string) error {
	params, err := sourceParams(args)
	if err != nil {
		return err
	}

	targets, err := cmd.Flags().GetStringSlice("target")
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		targets = loadDefaults().Compile.Targets
	}
	params["targets"] = targets

	optimize, err := cmd.Root().PersistentFlags().GetBool("optimize")
	if err != nil {
		return err
	}
	if !cmd.Root().PersistentFlags().Changed("optimize") {
		optimize = loadDefaults().Compile.Optimize
	}
	params["optimize"] = optimize

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("compile", params)
	if err != nil {
		return printServiceError(cmd, err)
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	outTargets, _ := res["targets"].([]service.Result)
	for _, t := range outTargets {
		if outPath == "" {
			fmt.Fprintf(os.Stdout, "== %s ==\n", t["target"])
			fmt.Fprintln(os.Stdout, t["code"])
			continue
		}
		b, _ := t["bundle"].(bundle.OutputBundle)
		dest := outPath
		if len(outTargets) > 1 {
			dest = fmt.Sprintf("%s.%s", outPath, t["target"])
		}
		if err := b.WriteTo(dest); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s -> %s\n", t["target"], dest)
	}
	return nil
}
