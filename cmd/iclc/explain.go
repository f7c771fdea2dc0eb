package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] [path]",
	Short: "Print the Intent Graph for a source file as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	params, err := sourceParams(args)
	if err != nil {
		return err
	}
	optimize, err := cmd.Root().PersistentFlags().GetBool("optimize")
	if err != nil {
		return err
	}
	params["optimize"] = optimize

	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("explain", params)
	if err != nil {
		return printServiceError(cmd, err)
	}
	fmt.Fprintln(os.Stdout, res["graph"])
	return nil
}
