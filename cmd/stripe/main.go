package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/stripe-client/cmd/stripe/commands"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stripe-client",
	Short: "Stripe API CLI",
	Long: `A command-line interface for the Stripe API.

It manages customers, charges, payment intents, refunds and events, and
receives signed webhook events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.stripe-client/config.yml)")
	rootCmd.PersistentFlags().String("api-base", "", "API base URL")
	rootCmd.PersistentFlags().StringP("secret-key", "k", "", "secret API key")
	rootCmd.PersistentFlags().String("stripe-account", "", "connected account to act on")
	rootCmd.PersistentFlags().String("stripe-version", "", "API version to pin")
	rootCmd.PersistentFlags().Int("retries", 0, "retry failed requests with exponential backoff up to N times")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests and responses to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api_base", rootCmd.PersistentFlags().Lookup("api-base"))
	_ = viper.BindPFlag("secret_key", rootCmd.PersistentFlags().Lookup("secret-key"))
	_ = viper.BindPFlag("stripe_account", rootCmd.PersistentFlags().Lookup("stripe-account"))
	_ = viper.BindPFlag("stripe_version", rootCmd.PersistentFlags().Lookup("stripe-version"))
	_ = viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewCustomersCommand())
	rootCmd.AddCommand(commands.NewChargesCommand())
	rootCmd.AddCommand(commands.NewPaymentIntentsCommand())
	rootCmd.AddCommand(commands.NewRefundsCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewWebhooksCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, commands.ConfigDirName)

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// STRIPE_SECRET_KEY, STRIPE_API_BASE, ...
	viper.SetEnvPrefix("STRIPE")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
