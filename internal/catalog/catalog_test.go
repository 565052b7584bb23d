package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBoardFile writes a platform definition below root, creating parent
// directories as needed.
func writeBoardFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover_IndexesPlatforms(t *testing.T) {
	root := t.TempDir()
	writeBoardFile(t, root, "boards/alpha/alpha.yaml", `
identifier: alpha
arch: arm
testing:
  default: true
`)
	writeBoardFile(t, root, "boards/beta/beta.yaml", `
identifier: acme/beta
arch: riscv
`)
	writeBoardFile(t, root, "boards/notes.txt", "not a platform file")

	c, err := Discover(root)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "acme/beta", all[0].Name)
	assert.Equal(t, "alpha", all[1].Name)

	require.NotNil(t, c.Get("alpha"))
	assert.Equal(t, "arm", c.Get("alpha").Arch)
	assert.Nil(t, c.Get("gamma"))
}

func TestDiscover_LookupByNormalizedName(t *testing.T) {
	root := t.TempDir()
	writeBoardFile(t, root, "beta.yaml", `
identifier: acme/beta
arch: riscv
`)

	c, err := Discover(root)
	require.NoError(t, err)

	p := c.Get("acme_beta")
	require.NotNil(t, p)
	assert.Equal(t, "acme/beta", p.Name)
}

func TestDiscover_DuplicateIdentifier(t *testing.T) {
	root := t.TempDir()
	writeBoardFile(t, root, "a/board.yaml", `
identifier: alpha
arch: arm
`)
	writeBoardFile(t, root, "b/board.yaml", `
identifier: alpha
arch: riscv
`)

	_, err := Discover(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate platform identifier "alpha"`)
}

func TestDiscover_PropagatesLoadError(t *testing.T) {
	root := t.TempDir()
	writeBoardFile(t, root, "broken.yaml", `
arch: arm
`)

	_, err := Discover(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier")
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning")
}

func TestDiscover_MultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeBoardFile(t, rootA, "alpha.yaml", `
identifier: alpha
arch: arm
`)
	writeBoardFile(t, rootB, "beta.yaml", `
identifier: beta
arch: x86
`)

	c, err := Discover(rootA, rootB)
	require.NoError(t, err)
	assert.Len(t, c.All(), 2)
}

func TestDefaults(t *testing.T) {
	root := t.TempDir()
	writeBoardFile(t, root, "alpha.yaml", `
identifier: alpha
arch: arm
testing:
  default: true
`)
	writeBoardFile(t, root, "beta.yaml", `
identifier: beta
arch: arm
`)

	c, err := Discover(root)
	require.NoError(t, err)

	defaults := c.Defaults()
	require.Len(t, defaults, 1)
	assert.Equal(t, "alpha", defaults[0].Name)
}

func TestEnvSatisfied(t *testing.T) {
	const name = "TESTRIG_CATALOG_TEST_SDK_DIR"
	root := t.TempDir()
	writeBoardFile(t, root, "alpha.yaml", `
identifier: alpha
arch: arm
env:
  - `+name+`
`)
	writeBoardFile(t, root, "beta.yaml", `
identifier: beta
arch: arm
`)

	t.Setenv(name, "")
	c, err := Discover(root)
	require.NoError(t, err)
	satisfied := c.EnvSatisfied()
	require.Len(t, satisfied, 1)
	assert.Equal(t, "beta", satisfied[0].Name)

	t.Setenv(name, "/opt/sdk")
	c, err = Discover(root)
	require.NoError(t, err)
	assert.Len(t, c.EnvSatisfied(), 2)
}
