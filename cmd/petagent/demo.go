package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/agent"
	"github.com/fentz26/petstore-agent/internal/render"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the predefined prompt demo",
	Long:  `Run the fixed list of demo prompts through the agent, printing each decorated response.`,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, cfg, cleanup, err := newAgent()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(render.Banner(cfg.BaseURL, offline))

	prompts := agent.DemoPrompts()
	for i, prompt := range prompts {
		fmt.Println(render.PromptHeader(i+1, len(prompts), prompt))
		fmt.Println(a.Process(cmd.Context(), prompt))
		fmt.Println()
		fmt.Println(render.Divider())
		fmt.Println()
	}

	fmt.Println(render.Summary())
	return nil
}
