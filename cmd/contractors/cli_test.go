package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/contractors/cmd/contractors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "keywords", "locations", "validate", "leads"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help prints usage without error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "keywords")
	})

	t.Run("no arguments prints usage and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "validate")
	})

	t.Run("keywords searches the shipped data", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--data-dir", "../../data", "keywords", "plumb"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Plumbing\nPlumbing Repair\n", stdout.String())
	})

	t.Run("locations matches county names", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--data-dir", "../../data", "locations", "arapahoe"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Aurora (Arapahoe)\n")
		assert.Contains(t, stdout.String(), "Centennial (Arapahoe)\n")
	})

	t.Run("validate reports location membership", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--data-dir", "../../data", "validate", "LAKEWOOD", "--type", "location"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "valid\n", stdout.String())
	})

	t.Run("rejects unknown term type", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), []string{"validate", "x", "--type", "county"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("returns error when data files are missing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--data-dir", t.TempDir(), "keywords", "x"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "cannot read keywords.csv")
	})

	t.Run("leads lists nothing from a fresh database", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"leads"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "No inquiries found.\n", stdout.String())
	})

	t.Run("fails on missing catalog file", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), []string{"--catalog", filepath.Join(t.TempDir(), "none.yaml"), "keywords"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load service catalog")
	})

	t.Run("serve stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(ctx, []string{"serve", "--addr", "127.0.0.1:0", "--api-key", "test-key"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "server started")
		assert.Contains(t, stderr.String(), "server stopping")
	})
}
