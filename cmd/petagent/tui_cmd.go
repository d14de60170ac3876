package main

import (
	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive prompt session",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, _, cleanup, err := newAgent()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.New(a).Run()
}
