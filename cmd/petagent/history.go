package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently processed prompts",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum records to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	history, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer history.Close()

	queries, err := history.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(queries) == 0 {
		fmt.Println("No prompts recorded yet. Run `petagent demo` or `petagent ask` first.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tINTENT\tOUTCOME\tMS\tPROMPT")
	for _, q := range queries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			q.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			q.Intent, q.Outcome, q.DurationMs, q.Prompt)
	}
	w.Flush()

	counts, err := history.CountByIntent()
	if err != nil {
		return err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Printf("\nTotal: %d prompts across %d intents\n", total, len(counts))

	return nil
}
