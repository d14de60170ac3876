package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/intent"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Process a single prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var routeCmd = &cobra.Command{
	Use:   "route <prompt>",
	Short: "Preview which query a prompt routes to, without calling the API",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoute,
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, _, cleanup, err := newAgent()
	if err != nil {
		return err
	}
	defer cleanup()

	prompt := strings.Join(args, " ")
	fmt.Println(a.Process(cmd.Context(), prompt))
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	router, err := newRouter(cfg)
	if err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	decision, err := router.Route(cmd.Context(), prompt)
	if err != nil {
		return err
	}

	fmt.Printf("Prompt: %s\n\n", prompt)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Intent:\t%s\n", decision.Intent)
	if decision.Intent == intent.IntentPetByID {
		if decision.HasPetID {
			fmt.Fprintf(w, "Pet ID:\t%d\n", decision.PetID)
		} else {
			fmt.Fprintf(w, "Pet ID:\t(none found)\n")
		}
	}
	if decision.Status != "" {
		fmt.Fprintf(w, "Status:\t%s\n", decision.Status)
	}
	if len(decision.MatchedKeywords) > 0 {
		fmt.Fprintf(w, "Matched:\t%s\n", strings.Join(decision.MatchedKeywords, ", "))
	}
	w.Flush()

	return nil
}
