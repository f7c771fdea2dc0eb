package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Run the front-end only: lex, parse, and semantic-check a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	params, err := sourceParams(args)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("check", params)
	if err != nil {
		return printServiceError(cmd, err)
	}
	fmt.Fprintf(os.Stdout, "ok: %d statement(s)\n", res["statement_count"])
	return nil
}
