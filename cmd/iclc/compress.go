package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compressCmd = &cobra.Command{
	Use:   "compress [flags] [path]",
	Short: "Render a source file's deterministic compressed form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompress,
}

func runCompress(cmd *cobra.Command, args []string) error {
	params, err := sourceParams(args)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("compress", params)
	if err != nil {
		return printServiceError(cmd, err)
	}
	fmt.Fprint(os.Stdout, res["compressed"])
	return nil
}
