package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
)

// JSON formatting.
const defaultJSONIndent = 2

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// render writes v as JSON or YAML, or header and rows as a table.
func render(w io.Writer, v interface{}, header []string, rows [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(v)
	default:
		return renderTable(w, header, rows)
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toCells(header)...)

	for _, row := range rows {
		err := table.Append(toCells(row)...)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return cells
}

// valueOr returns value, or N/A when it is empty.
func valueOr(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return constants.NotAvailable
	}

	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

func formatAmount(amount int64, currency string) string {
	return strconv.FormatInt(amount, 10) + " " + strings.ToUpper(currency)
}

// validateLimit checks a --limit flag value.
func validateLimit(limit int64) error {
	if limit < 1 || limit > constants.MaxPageSize {
		return fmt.Errorf("%w: got %d", constants.ErrLimitOutOfRange, limit)
	}

	return nil
}

// parseMetadata turns key=value pairs into metadata.
func parseMetadata(pairs []string) (stripe.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(stripe.Metadata, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMetadata, pair)
		}

		metadata[key] = value
	}

	return metadata, nil
}

// readPayloadFile reads a regular file given on the command line.
func readPayloadFile(path string) ([]byte, error) {
	if strings.Contains(path, "..") {
		return nil, fmt.Errorf("%w: %s", constants.ErrDirectoryTraversalDetected, path)
	}

	cleaned := filepath.Clean(path)

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", cleaned, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", constants.ErrNotRegularFile, cleaned)
	}

	data, err := os.ReadFile(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cleaned, err)
	}

	return data, nil
}

// createClient builds a client from flags, environment and the config file.
func createClient() (stripe.Client, error) {
	secretKey := viper.GetString("secret_key")
	if secretKey == "" {
		var err error

		secretKey, err = promptSecretKey(os.Stdin, os.Stderr)
		if err != nil {
			return nil, err
		}
	}

	config := &stripe.Config{
		SecretKey:     secretKey,
		APIBase:       viper.GetString("api_base"),
		StripeAccount: viper.GetString("stripe_account"),
		StripeVersion: stripe.APIVersion(viper.GetString("stripe_version")),
		AppInfo:       &stripe.AppInfo{Name: "stripe-client-cli", Version: constants.LibraryVersion},
	}

	if retries := viper.GetInt("retries"); retries > 0 {
		config.Strategy = stripe.ExponentialBackoff(uint32(retries)) //nolint:gosec // flag values are small
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewStderrLogger(os.Stderr)
	}

	client, err := stripeclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// promptSecretKey reads a secret key from the terminal without echo.
func promptSecretKey(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrNotInteractive
	}

	_, _ = fmt.Fprint(prompt, "Secret key: ")

	key, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	secret := strings.TrimSpace(string(key))
	if secret == "" {
		return "", constants.ErrEmptySecretEntered
	}

	return secret, nil
}

// StderrLogger writes leveled log lines with sorted fields.
type StderrLogger struct {
	w io.Writer
}

// NewStderrLogger creates a logger writing to w.
func NewStderrLogger(w io.Writer) *StderrLogger {
	return &StderrLogger{w: w}
}

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var b strings.Builder

	b.WriteString("[" + level + "] " + msg)

	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%v", key, fields[key])
	}

	_, _ = fmt.Fprintln(l.w, b.String())
}

// Debug implements stripe.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// Info implements stripe.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn implements stripe.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error implements stripe.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

// addListFlags registers the flags shared by list commands.
func addListFlags(cmd *cobra.Command, limit *int64, all *bool) {
	cmd.Flags().Int64Var(limit, "limit", constants.DefaultPageSize, "number of items per page (1-100)")
	cmd.Flags().BoolVar(all, "all", false, "fetch every page")
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
