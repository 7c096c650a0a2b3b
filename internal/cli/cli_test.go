package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/sharks/shamir"
)

func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestSplitRecoverLines(t *testing.T) {
	secret := []byte("correct horse battery staple\n")

	for _, format := range []string{FormatBase64, FormatHex} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, secret, "split", "-k", "3", "-n", "5", "-f", format)
			require.NoError(t, err)

			lines := nonEmptyLines(out)
			require.Len(t, lines, 5)

			subset := strings.Join([]string{lines[4], lines[0], lines[2]}, "\n")
			recovered, _, err := run(t, []byte(subset), "recover", "-f", format)
			require.NoError(t, err)
			assert.Equal(t, string(secret), recovered)

			_, _, err = run(t, []byte(subset), "recover", "-f", format, "-k", "4")
			assert.ErrorIs(t, err, shamir.ErrInsufficientShares)
		})
	}
}

func TestSplitRecoverLargeSecret(t *testing.T) {
	// both encodings produce share lines well past 64 KiB
	secret := bytes.Repeat([]byte("0123456789abcdef"), 70000/16)

	for _, format := range []string{FormatBase64, FormatHex} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, secret, "split", "-k", "2", "-n", "3", "-f", format)
			require.NoError(t, err)

			lines := nonEmptyLines(out)
			require.Len(t, lines, 3)
			assert.Greater(t, len(lines[0]), 64*1024)

			recovered, _, err := run(t, []byte(out), "recover", "-f", format)
			require.NoError(t, err)
			assert.Equal(t, secret, []byte(recovered))

			_, _, err = run(t, []byte(out), "verify", "-k", "2", "-f", format)
			require.NoError(t, err)
		})
	}
}

func TestSplitRecoverDocuments(t *testing.T) {
	secret := []byte{0x00, 0xAB, 0xFF, 0x10}

	for _, format := range []string{FormatYAML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, secret, "split", "-k", "2", "-n", "4", "-f", format)
			require.NoError(t, err)

			set, err := readShares(strings.NewReader(out), format)
			require.NoError(t, err)
			assert.Equal(t, 2, set.Threshold)
			require.Len(t, set.Shares, 4)

			recovered, _, err := run(t, []byte(out), "recover", "-f", format)
			require.NoError(t, err)
			assert.Equal(t, secret, []byte(recovered))

			verified, _, err := run(t, []byte(out), "verify", "-f", format)
			require.NoError(t, err)
			assert.Contains(t, verified, "OK: 4 shares")
		})
	}
}

func TestRecoverRejectsMixedSets(t *testing.T) {
	first, _, err := run(t, []byte("first"), "split", "-k", "2", "-n", "2", "-f", "yaml")
	require.NoError(t, err)
	second, _, err := run(t, []byte("other"), "split", "-k", "2", "-n", "2", "-f", "yaml")
	require.NoError(t, err)

	docs := strings.SplitN(first, "---", 2)[0] + "---\n" + strings.SplitN(second, "---", 2)[1]

	_, _, err = run(t, []byte(docs), "recover", "-f", "yaml")
	assert.ErrorIs(t, err, shamir.ErrInconsistentShares)
}

func TestSplitFromFileAndConfig(t *testing.T) {
	dir := t.TempDir()

	secretPath := filepath.Join(dir, "secret.bin")
	require.NoError(t, os.WriteFile(secretPath, []byte("from a file"), 0o600))

	configPath := filepath.Join(dir, "sharks.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("threshold: 4\nshares: 6\nformat: hex\nlog:\n  level: debug\n  type: json\n"), 0o600))

	out, stderr, err := run(t, nil, "split", "--config", configPath, "-i", secretPath)
	require.NoError(t, err)

	lines := nonEmptyLines(out)
	require.Len(t, lines, 6)
	assert.Contains(t, stderr, `"msg":"secret split"`)
	assert.NotContains(t, stderr, "from a file")

	sharesPath := filepath.Join(dir, "shares.txt")
	require.NoError(t, os.WriteFile(sharesPath, []byte(strings.Join(lines[2:], "\n")), 0o600))

	recovered, _, err := run(t, nil, "recover", "--config", configPath, "-i", sharesPath)
	require.NoError(t, err)
	assert.Equal(t, "from a file", recovered)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SHARKS_THRESHOLD", "3")
	t.Setenv("SHARKS_SHARES", "4")

	out, _, err := run(t, []byte("env"), "split")
	require.NoError(t, err)
	assert.Len(t, nonEmptyLines(out), 4)

	out, _, err = run(t, []byte("env"), "split", "-n", "7")
	require.NoError(t, err)
	assert.Len(t, nonEmptyLines(out), 7)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   []byte
		args    []string
		wantErr error
		errText string
	}{
		{
			name:    "empty secret",
			stdin:   nil,
			args:    []string{"split"},
			wantErr: shamir.ErrEmptySecret,
		},
		{
			name:    "too many shares",
			stdin:   []byte("secret"),
			args:    []string{"split", "-k", "2", "-n", "256"},
			wantErr: shamir.ErrInvalidParameters,
		},
		{
			name:    "unknown format",
			stdin:   []byte("secret"),
			args:    []string{"split", "-f", "xml"},
			errText: "unsupported format",
		},
		{
			name:    "bad log level",
			stdin:   []byte("secret"),
			args:    []string{"split", "--log-level", "trace"},
			errText: "unsupported log level",
		},
		{
			name:    "single share",
			stdin:   []byte("AasC\n"),
			args:    []string{"recover"},
			wantErr: shamir.ErrInsufficientShares,
		},
		{
			name:    "malformed share line",
			stdin:   []byte("AQID\n%%%\n"),
			args:    []string{"recover"},
			wantErr: shamir.ErrMalformedShare,
		},
		{
			name:    "malformed hex line",
			stdin:   []byte("0102\nzz\n"),
			args:    []string{"recover", "-f", "hex"},
			wantErr: shamir.ErrMalformedShare,
		},
		{
			name:    "duplicate shares",
			stdin:   []byte("AQID\nAQID\n"),
			args:    []string{"recover"},
			wantErr: shamir.ErrDuplicateShare,
		},
		{
			name:    "verify without threshold",
			stdin:   []byte("AQID\nAgID\n"),
			args:    []string{"verify"},
			errText: "threshold is required",
		},
		{
			name:    "missing input file",
			args:    []string{"recover", "-i", "/nonexistent/shares.txt"},
			errText: "open input",
		},
		{
			name:    "invalid set id",
			stdin:   []byte("set: nope\nthreshold: 2\nshare: AQID\n"),
			args:    []string{"recover", "-f", "yaml"},
			errText: "invalid set id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	out, _, err := run(t, []byte("tamper"), "split", "-k", "2", "-n", "3", "-f", "hex")
	require.NoError(t, err)

	lines := nonEmptyLines(out)
	require.Len(t, lines, 3)

	// flip the last hex digit of the third share
	last := []byte(lines[2])
	if last[len(last)-1] == '0' {
		last[len(last)-1] = '1'
	} else {
		last[len(last)-1] = '0'
	}
	lines[2] = string(last)

	_, _, err = run(t, []byte(strings.Join(lines, "\n")), "verify", "-k", "2", "-f", "hex")
	assert.ErrorIs(t, err, shamir.ErrVerificationFailed)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "sharks dev\n", out)
}
