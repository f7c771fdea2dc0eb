package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scientificaj/icl/internal/service"
)

// sourceParams builds the source/input_path half of a façade call from a
// cobra positional path argument: "-" or no argument reads stdin.
func sourceParams(args []string) (service.Params, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return service.Params{"source": string(data)}, nil
	}
	return service.Params{"input_path": args[0]}, nil
}

// printServiceError renders the façade's uniform {code, message, hint}
// error payload to stderr and silences cobra's own usage/error printing so
// the message isn't shown twice.
func printServiceError(cmd *cobra.Command, err error) error {
	payload := service.AsErrorPayload(err)
	if payload.Code != "" {
		fmt.Fprintf(os.Stderr, "iclc: %s: %s\n", payload.Code, payload.Message)
	} else {
		fmt.Fprintf(os.Stderr, "iclc: %s\n", payload.Message)
	}
	if payload.Hint != "" {
		fmt.Fprintf(os.Stderr, "  hint: %s\n", payload.Hint)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
