package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommands(t *testing.T) {
	path := writeSample(t, sample)
	cases := map[string]struct {
		args           []string
		stdin          string
		expectedOutput string
		expectedErr    bool
	}{
		"CountFile": {
			args:           []string{"count", "--input", path},
			expectedOutput: "14\n",
		},
		"CountStdin": {
			args:           []string{"count"},
			stdin:          "1-2\n1-2\n2-4\n0-9\n20-100\n",
			expectedOutput: "91\n",
		},
		"Fresh": {
			args:           []string{"fresh", "--input", path},
			expectedOutput: "3\n",
		},
		"Ranges": {
			args:           []string{"ranges", "--input", path},
			expectedOutput: "3-5\n10-20\n",
		},
		"ParseError": {
			args:        []string{"count"},
			stdin:       "1-2\nx-3\n",
			expectedErr: true,
		},
		"MissingFile": {
			args:        []string{"count", "--input", filepath.Join(t.TempDir(), "missing")},
			expectedErr: true,
		},
		"BadLogLevel": {
			args:        []string{"count", "--input", path, "--log-level", "loud"},
			expectedErr: true,
		},
		"ExtraArgs": {
			args:        []string{"count", "extra"},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := executeCommand(t, tc.stdin, tc.args...)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if out != tc.expectedOutput {
				t.Errorf("%s: -want %q, +got: %q\n", name, tc.expectedOutput, out)
			}
		})
	}
}

func TestDebugLogging(t *testing.T) {
	path := writeSample(t, sample)
	_, stderr, err := executeCommand(t, "", "count", "--input", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "inventory loaded")
	assert.Contains(t, stderr, "ranges coalesced")
}

func TestInputFromEnv(t *testing.T) {
	path := writeSample(t, "1-4\n")
	t.Setenv("IDRANGE_INPUT", path)
	out, _, err := executeCommand(t, "", "count")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestInputFromConfig(t *testing.T) {
	path := writeSample(t, "10-19\n")
	config := filepath.Join(t.TempDir(), "idrange.yaml")
	require.NoError(t, os.WriteFile(config, []byte("input: "+path+"\n"), 0o600))

	out, _, err := executeCommand(t, "", "count", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestConfigIsPerExecution(t *testing.T) {
	path := writeSample(t, "10-19\n")
	config := filepath.Join(t.TempDir(), "idrange.yaml")
	require.NoError(t, os.WriteFile(config, []byte("input: "+path+"\nlog-level: debug\n"), 0o600))

	out, stderr, err := executeCommand(t, "", "count", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Contains(t, stderr, "inventory loaded")

	require.NoError(t, os.Remove(path))

	out, stderr, err = executeCommand(t, "1-3\n", "count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.NotContains(t, stderr, "inventory loaded")
}
