package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fentz26/petstore-agent/internal/mockapi"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Serve the fixture pet store API locally",
	Long:  `Serve the fixture pet store API over HTTP, so the demo can run against a local endpoint.`,
	RunE:  runMock,
}

var mockAddr string

func init() {
	mockCmd.Flags().StringVar(&mockAddr, "addr", "127.0.0.1:8099", "listen address")
}

func runMock(cmd *cobra.Command, args []string) error {
	server := mockapi.NewServer(nil, mockAddr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("Fixture pet store API listening on http://%s\n", mockAddr)
	fmt.Printf("Point the agent at it with: base_url: http://%s\n", mockAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
