package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"retaildash/internal/server"
	"retaildash/internal/store"
	"retaildash/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server over the dataset file",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default :8833)")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(viper.GetString("data_file"))
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer st.Close()

	tracing, err := telemetry.Setup(ctx, "retaildash")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() { _ = tracing.Shutdown(context.Background()) }()

	addr := viper.GetString("listen")
	fmt.Printf("retaildash API listening on %s\n", addr)
	srv := server.New(st, tracing)
	return srv.ListenAndServe(ctx, addr)
}
