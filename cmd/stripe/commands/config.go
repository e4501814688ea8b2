package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

// ConfigDirName is the directory under $HOME holding config.yml.
const ConfigDirName = ".stripe-client"

// Common static errors used throughout the commands package.
var (
	ErrInvalidMetadata = errors.New("metadata must be given as key=value")
	ErrInvalidRetries  = errors.New("retries must be a non-negative integer")
)

// Config represents the CLI configuration file.
type Config struct {
	SecretKey          string `json:"secret_key,omitempty"           yaml:"secret_key,omitempty"`
	APIBase            string `json:"api_base,omitempty"             yaml:"api_base,omitempty"`
	StripeAccount      string `json:"stripe_account,omitempty"       yaml:"stripe_account,omitempty"`
	StripeVersion      string `json:"stripe_version,omitempty"       yaml:"stripe_version,omitempty"`
	Output             string `json:"output,omitempty"               yaml:"output,omitempty"`
	Retries            int    `json:"retries,omitempty"              yaml:"retries,omitempty"`
	WebhookSecret      string `json:"webhook_secret,omitempty"       yaml:"webhook_secret,omitempty"`
	NATSURL            string `json:"nats_url,omitempty"             yaml:"nats_url,omitempty"`
	EventSubjectPrefix string `json:"event_subject_prefix,omitempty" yaml:"event_subject_prefix,omitempty"`
}

// configKeys lists the keys config set/unset accept.
var configKeys = []string{
	"secret_key", "api_base", "stripe_account", "stripe_version", "output",
	"retries", "webhook_secret", "nats_url", "event_subject_prefix",
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.OutOrStdout(), loadConfig())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a secret key",
		Long:  "Prompt for a secret API key and store it in the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := promptSecretKey(os.Stdin, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			config := loadConfig()
			config.SecretKey = key

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored %s key %s\n", auth.Mode(key), auth.Mask(key))

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		SecretKey:          viper.GetString("secret_key"),
		APIBase:            viper.GetString("api_base"),
		StripeAccount:      viper.GetString("stripe_account"),
		StripeVersion:      viper.GetString("stripe_version"),
		Output:             viper.GetString("output"),
		Retries:            viper.GetInt("retries"),
		WebhookSecret:      viper.GetString("webhook_secret"),
		NATSURL:            viper.GetString("nats_url"),
		EventSubjectPrefix: viper.GetString("event_subject_prefix"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "secret_key":
		config.SecretKey = value
	case "api_base":
		config.APIBase = value
	case "stripe_account":
		config.StripeAccount = value
	case "stripe_version":
		config.StripeVersion = value
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
		}
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidRetries, value)
		}

		config.Retries = retries
	case "webhook_secret":
		config.WebhookSecret = value
	case "nats_url":
		config.NATSURL = value
	case "event_subject_prefix":
		config.EventSubjectPrefix = value
	default:
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	if key == "retries" {
		config.Retries = 0

		return nil
	}

	return setConfigValue(config, key, zeroValue(key))
}

func zeroValue(key string) string {
	if key == "output" {
		return constants.FormatTable
	}

	return ""
}

func showConfig(w io.Writer, config *Config) error {
	masked := *config
	if masked.SecretKey != "" {
		masked.SecretKey = auth.Mask(masked.SecretKey)
	}

	if masked.WebhookSecret != "" {
		masked.WebhookSecret = constants.MaskedSecret
	}

	rows := [][]string{
		{"secret_key", valueOr(masked.SecretKey)},
		{"mode", auth.Mode(config.SecretKey)},
		{"api_base", valueOr(masked.APIBase)},
		{"stripe_account", valueOr(masked.StripeAccount)},
		{"stripe_version", valueOr(masked.StripeVersion)},
		{"output", valueOr(masked.Output)},
		{"retries", strconv.Itoa(masked.Retries)},
		{"webhook_secret", valueOr(masked.WebhookSecret)},
		{"nats_url", valueOr(masked.NATSURL)},
		{"event_subject_prefix", valueOr(masked.EventSubjectPrefix)},
	}

	return render(w, masked, []string{"Key", "Value"}, rows)
}

// configFilePath returns the file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	return writeConfigFile(configFile, config)
}

func writeConfigFile(configFile string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
