// Package main implements the answers command for the advent CLI.
// This file handles listing the cached puzzle answers.
package main

import (
	"fmt"
	"strconv"

	"adventnerd/internal/store"

	"github.com/spf13/cobra"
)

// answersCmd lists answers recorded by previous runs
var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "List cached puzzle answers",
	RunE:  runAnswers,
}

func runAnswers(cmd *cobra.Command, args []string) error {
	st, err := store.NewAnswerStore(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	answers, err := st.List()
	if err != nil {
		return err
	}

	if len(answers) == 0 {
		fmt.Println("No cached answers. Use 'advent run <year> <day>' first.")
		return nil
	}

	for _, a := range answers {
		fmt.Printf("  %d day %2d part %d: %-15s (%s)\n",
			a.Year, a.Day, a.Part, a.Answer, a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}

	stats, err := st.Stats()
	if err != nil {
		return err
	}
	for _, a := range answers {
		year := strconv.Itoa(a.Year)
		if n, ok := stats[year]; ok {
			fmt.Printf("  %s: %d answers\n", year, n)
			delete(stats, year)
		}
	}
	fmt.Printf("Total: %d answers\n", stats["total"])
	return nil
}
