package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"retaildash/internal/api"
	"retaildash/internal/store"
	"retaildash/internal/ui"
)

// runTUI opens the dashboard against either the mock data layer or a
// running REST server, per config.
func runTUI(cmd *cobra.Command, args []string) error {
	client, cleanup, err := buildClient()
	if err != nil {
		return err
	}
	defer cleanup()

	app := ui.NewApp(ui.NewServices(client))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// buildClient picks the facade implementation from config.
func buildClient() (*api.Client, func(), error) {
	switch mode := viper.GetString("mode"); mode {
	case "rest":
		return api.NewREST(viper.GetString("api_url"), nil), func() {}, nil
	case "mock":
		st, err := store.Open(viper.GetString("data_file"))
		if err != nil {
			return nil, nil, fmt.Errorf("open dataset: %w", err)
		}
		return api.NewMock(st, api.DefaultMockLatency), func() { _ = st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown mode %q (want mock or rest)", mode)
	}
}
