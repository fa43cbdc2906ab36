package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStationDir(t *testing.T, station string, names ...string) *Discovery {
	t.Helper()
	base := t.TempDir()
	dir := filepath.Join(base, station)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("19950101 10\n"), 0644))
	}
	return NewDiscovery(base)
}

func TestFindStationFiles_SortedByName(t *testing.T) {
	d := setupStationDir(t, "0730", "AS010319.95", "AS010319.81", "AS010319.00")

	files, err := d.FindStationFiles("0730")
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, "AS010319.00", files[0].Name)
	assert.Equal(t, "AS010319.81", files[1].Name)
	assert.Equal(t, "AS010319.95", files[2].Name)
}

func TestFindStationFiles_SkipsSubdirectories(t *testing.T) {
	d := setupStationDir(t, "0730", "AS010319.95")
	require.NoError(t, os.MkdirAll(filepath.Join(d.StationDir("0730"), "archive"), 0755))

	files, err := d.FindStationFiles("0730")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "AS010319.95", files[0].Name)
}

func TestFindStationFiles_MissingDir(t *testing.T) {
	d := NewDiscovery(t.TempDir())

	_, err := d.FindStationFiles("0730")
	assert.Error(t, err)
}

func TestHasStationDir(t *testing.T) {
	d := setupStationDir(t, "0730", "AS010319.95")

	assert.True(t, d.HasStationDir("0730"))
	assert.False(t, d.HasStationDir("0610"))
}
