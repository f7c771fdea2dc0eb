package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scientificaj/icl/internal/service"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List every registered target pack and its manifest",
	Args:  cobra.NoArgs,
	RunE:  runCapabilities,
}

func runCapabilities(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	res, err := svc.Dispatch("capabilities", nil)
	if err != nil {
		return printServiceError(cmd, err)
	}
	targets, _ := res["targets"].([]service.Result)
	for _, t := range targets {
		aliasSuffix := ""
		if aliases, ok := t["aliases"].([]string); ok && len(aliases) > 0 {
			aliasSuffix = fmt.Sprintf(" (aliases: %v)", aliases)
		}
		fmt.Fprintf(os.Stdout, "%-10s %-12s %s v%s%s\n", t["target"], t["stability"], t["file_extension"], t["version"], aliasSuffix)
	}
	return nil
}
