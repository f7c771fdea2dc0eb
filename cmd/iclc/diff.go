package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scientificaj/icl/internal/service"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] <before.json> <after.json>",
	Short: "Structurally diff two previously-exported Intent Graphs",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("diff", service.Params{
		"before_path": args[0],
		"after_path":  args[1],
	})
	if err != nil {
		return printServiceError(cmd, err)
	}
	fmt.Fprintf(os.Stdout, "added nodes:   %v\n", res["added_nodes"])
	fmt.Fprintf(os.Stdout, "removed nodes: %v\n", res["removed_nodes"])
	fmt.Fprintf(os.Stdout, "changed nodes: %v\n", res["changed_nodes"])
	fmt.Fprintf(os.Stdout, "added edges:   %v\n", res["added_edges"])
	fmt.Fprintf(os.Stdout, "removed edges: %v\n", res["removed_edges"])
	return nil
}
