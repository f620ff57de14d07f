package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/contractors"
	"github.com/fwojciec/contractors/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads services in file order", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, `
- slug: roofing
  name: Roofing
  query: roofing contractors
  title: Top Roofers in Denver
  heading: Top-Rated Roofers in Denver
- slug: landscapers
  name: Landscaping
  query: landscapers
`)

		services, err := yaml.LoadCatalog(path)

		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.Equal(t, "roofing", services[0].Slug)
		assert.Equal(t, "Top Roofers in Denver", services[0].Title)
		assert.Equal(t, "Top-Rated Roofers in Denver", services[0].Heading)
		assert.Equal(t, "landscapers", services[1].Slug)
	})

	t.Run("loads the shipped catalog", func(t *testing.T) {
		t.Parallel()

		services, err := yaml.LoadCatalog("../data/services.yaml")

		require.NoError(t, err)
		assert.Equal(t, contractors.DefaultServices(), services)
	})

	t.Run("returns EFILEACCESS for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, contractors.EFILEACCESS, contractors.ErrorCode(err))
	})

	t.Run("returns EPARSE for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, "- slug: [unclosed\n")

		_, err := yaml.LoadCatalog(path)

		require.Error(t, err)
		assert.Equal(t, contractors.EPARSE, contractors.ErrorCode(err))
	})

	t.Run("returns EPARSE for unknown fields", func(t *testing.T) {
		t.Parallel()

		path := writeCatalog(t, "- slug: a\n  name: A\n  query: a\n  price: 10\n")

		_, err := yaml.LoadCatalog(path)

		require.Error(t, err)
		assert.Equal(t, contractors.EPARSE, contractors.ErrorCode(err))
	})
}

func TestDecodeCatalog(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty catalog", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeCatalog(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, contractors.EINVALID, contractors.ErrorCode(err))
	})

	t.Run("rejects service without query", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeCatalog(strings.NewReader("- slug: a\n  name: A\n"))

		require.Error(t, err)
		assert.Equal(t, contractors.EINVALID, contractors.ErrorCode(err))
	})

	t.Run("rejects duplicate slugs", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeCatalog(strings.NewReader(`
- {slug: a, name: A, query: a}
- {slug: a, name: Other, query: other}
`))

		require.Error(t, err)
		assert.Equal(t, contractors.EINVALID, contractors.ErrorCode(err))
		assert.Contains(t, contractors.ErrorMessage(err), `duplicate service slug "a"`)
	})
}
