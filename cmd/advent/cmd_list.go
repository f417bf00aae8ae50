// Package main implements the list command for the advent CLI.
// This file handles listing the registered solvers.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd lists every registered solver
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered solvers",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	solvers := reg.Solvers()
	if len(solvers) == 0 {
		fmt.Println("No solvers registered.")
		return nil
	}

	for _, s := range solvers {
		fmt.Printf("  %d day %2d  %s\n", s.Year, s.Day, s.Name)
	}
	fmt.Printf("Total: %d solvers\n", len(solvers))
	return nil
}
