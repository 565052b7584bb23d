package platform

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestSnapshotGolden pins the fully-loaded view of a representative platform
// file. Regenerate with:
//
//	go test ./internal/platform -update
func TestSnapshotGolden(t *testing.T) {
	p := New()
	require.NoError(t, p.Load(filepath.Join("testdata", "acme_widget_m4.yaml")))

	data, err := p.Snapshot().MarshalIndent()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "acme_widget_m4", data)
}
