//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	SecretKey string
	APIBase   string
	CLIPath   string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		SecretKey: os.Getenv("STRIPE_TEST_SECRET_KEY"),
		APIBase:   os.Getenv("STRIPE_TEST_API_BASE"),
		CLIPath:   getCLIPath(),
		Verbose:   os.Getenv("STRIPE_TEST_VERBOSE") == "true",
	}
}

// getCLIPath determines the path to the stripe-client binary.
func getCLIPath() string {
	if path := os.Getenv("STRIPE_CLIENT_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../stripe-client", "./stripe-client"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "stripe-client"
}

// SkipIfMissingConfig skips the test unless a test mode key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.SecretKey == "" {
		t.Skip("STRIPE_TEST_SECRET_KEY not set, skipping integration test")
	}

	if !strings.HasPrefix(config.SecretKey, "sk_test_") && !strings.HasPrefix(config.SecretKey, "rk_test_") {
		t.Skip("STRIPE_TEST_SECRET_KEY is not a test mode key, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI binary is not built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.CLIPath); err != nil {
		t.Skipf("stripe-client binary not found at %s, skipping integration test", config.CLIPath)
	}
}

// NewClient creates a library client for the configured account.
func (config *TestConfig) NewClient(t *testing.T) stripe.Client {
	t.Helper()

	client, err := stripeclient.New(&stripe.Config{
		SecretKey: config.SecretKey,
		APIBase:   config.APIBase,
		Strategy:  stripe.ExponentialBackoff(3),
	})
	require.NoError(t, err)

	return client
}

// CommandRunner runs the CLI against the configured account.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a CLI command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, runner.config.CLIPath, args...) //nolint:gosec // test binary
	cmd.Env = append(os.Environ(), "STRIPE_SECRET_KEY="+runner.config.SecretKey)

	if runner.config.APIBase != "" {
		cmd.Env = append(cmd.Env, "STRIPE_API_BASE="+runner.config.APIBase)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.CLIPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput decodes stdout into v.
func AssertJSONOutput(t *testing.T, stdout string, v interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal([]byte(stdout), v), "output is not valid JSON: %s", stdout)
}
