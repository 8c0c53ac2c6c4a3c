// Root command for the retaildash CLI. The bare command opens the
// dashboard TUI; `retaildash serve` runs the REST API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "retaildash",
	Short: "Retail management dashboard",
	Long: "retaildash is a terminal dashboard for a small retail operation:\n" +
		"sales, inventory, customers, suppliers, invoices, expenses,\n" +
		"returns, and reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./retaildash.yaml)")
	rootCmd.PersistentFlags().String("data-file", "", "dataset file (default: ./retaildash.json)")
	rootCmd.Flags().String("mode", "", "data source: mock or rest")
	rootCmd.Flags().String("api-url", "", "REST API base URL (rest mode)")

	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
	_ = viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("api_url", rootCmd.Flags().Lookup("api-url"))

	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves settings with flag > env > config file > default
// precedence.
func loadConfig() error {
	viper.SetDefault("data_file", "retaildash.json")
	viper.SetDefault("mode", "mock")
	viper.SetDefault("api_url", "http://localhost:8833")
	viper.SetDefault("listen", ":8833")

	viper.SetEnvPrefix("RETAILDASH")
	viper.AutomaticEnv()

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	viper.SetConfigName("retaildash")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
