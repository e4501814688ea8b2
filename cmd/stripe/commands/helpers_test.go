package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "default", output: "", want: constants.FormatTable},
		{name: "json", output: "json", want: constants.FormatJSON},
		{name: "case insensitive", output: "YAML", want: constants.FormatYAML},
		{name: "unknown", output: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useViper(t, map[string]interface{}{"output": tt.output})

			got, err := outputFormat()
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	value := map[string]string{"id": "cus_1"}
	header := []string{"ID"}
	rows := [][]string{{"cus_1"}}

	t.Run("json", func(t *testing.T) {
		useViper(t, map[string]interface{}{"output": "json"})

		var buf bytes.Buffer
		require.NoError(t, render(&buf, value, header, rows))
		assert.Equal(t, "{\n  \"id\": \"cus_1\"\n}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		useViper(t, map[string]interface{}{"output": "yaml"})

		var buf bytes.Buffer
		require.NoError(t, render(&buf, value, header, rows))

		var decoded map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, value, decoded)
	})

	t.Run("table", func(t *testing.T) {
		useViper(t, map[string]interface{}{"output": "table"})

		var buf bytes.Buffer
		require.NoError(t, render(&buf, value, header, rows))
		assert.Contains(t, buf.String(), "cus_1")
	})
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, constants.NotAvailable, valueOr(""))
	assert.Equal(t, "x", valueOr("x"))
	assert.Equal(t, constants.NotAvailable, formatUnix(0))
	assert.Equal(t, "2018-08-02T10:10:20Z", formatUnix(1533204620))
	assert.Equal(t, "2000 USD", formatAmount(2000, "usd"))
}

func TestValidateLimit(t *testing.T) {
	require.NoError(t, validateLimit(1))
	require.NoError(t, validateLimit(100))
	require.ErrorIs(t, validateLimit(0), constants.ErrLimitOutOfRange)
	require.ErrorIs(t, validateLimit(101), constants.ErrLimitOutOfRange)
}

func TestParseMetadata(t *testing.T) {
	metadata, err := parseMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, metadata)

	metadata, err = parseMetadata([]string{"order=6735", "note=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, "6735", metadata["order"])
	assert.Equal(t, "a=b", metadata["note"])
	assert.Empty(t, metadata["empty"])

	_, err = parseMetadata([]string{"=value"})
	require.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestReadPayloadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"id":"evt_1"}`), 0o600))

	data, err := readPayloadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"evt_1"}`, string(data))

	_, err = readPayloadFile(dir)
	require.ErrorIs(t, err, constants.ErrNotRegularFile)

	_, err = readPayloadFile("../payload.json")
	require.ErrorIs(t, err, constants.ErrDirectoryTraversalDetected)

	_, err = readPayloadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStderrLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewStderrLogger(&buf)
	logger.Info("Sending request", map[string]interface{}{"path": "/v1/customers", "method": "GET"})
	logger.Error("Request failed", nil)

	assert.Equal(t,
		"[INFO] Sending request method=GET path=/v1/customers\n[ERROR] Request failed\n",
		buf.String())
}

func TestVersionCommand(t *testing.T) {
	useViper(t, map[string]interface{}{"output": "json"})

	cmd := NewVersionCommand("1.2.3", "abc123", "2026-10-01")

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var info VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, constants.LibraryVersion, info.LibraryVersion)
	assert.NotEmpty(t, info.GoVersion)
}
