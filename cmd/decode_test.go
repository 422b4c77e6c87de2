package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand(t *testing.T) {
	t.Setenv("LC_ALL", "C.UTF-8")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "display is default", stdin: "caf\xc3\xa9 \xff", args: []string{"decode"}, want: "café <FF>"},
		{name: "dash reads stdin", stdin: "plain", args: []string{"decode", "-"}, want: "plain"},
		{name: "explicit encoding", stdin: "caf\xe9", args: []string{"decode", "--encoding", "latin1"}, want: "café"},
		{name: "strict valid", stdin: "ok\n", args: []string{"decode", "--mode", "strict"}, want: "ok\n"},
		{name: "safe valid", stdin: "ok", args: []string{"decode", "--mode", "safe"}, want: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLIWithInput(t, tt.stdin, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestDecodeCommandSafeUsesLocaleFallback(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.ISO-8859-1")
	res := runCLIWithInput(t, "caf\xe9", "decode", "--mode", "safe")
	require.NoError(t, res.err)
	assert.Equal(t, "café", res.stdout)
}

func TestDecodeCommandStrictFailure(t *testing.T) {
	t.Setenv("LC_ALL", "C.UTF-8")
	res := runCLIWithInput(t, "ab\xff", "decode", "--mode", "strict")
	exitErr := requireExitCode(t, res.err, 1)
	assert.True(t, exitErr.Silent)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "cannot decode <FF> at offset 2 as utf-8")
}

func TestDecodeCommandReadsFile(t *testing.T) {
	t.Setenv("LC_ALL", "C.UTF-8")
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))

	res := runCLI(t, "decode", path)
	require.NoError(t, res.err)
	assert.Equal(t, "from file", res.stdout)
}

func TestDecodeCommandUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown mode", args: []string{"decode", "--mode", "lenient"}},
		{name: "unknown encoding", args: []string{"decode", "--encoding", "klingon"}},
		{name: "missing file", args: []string{"decode", filepath.Join(t.TempDir(), "nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLIWithInput(t, "x", tt.args...)
			requireExitCode(t, res.err, 2)
		})
	}
}
