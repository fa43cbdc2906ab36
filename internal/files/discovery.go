package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileInfo represents information about a discovered station file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery locates station measurement files under the base directory.
// Each station keeps its files in its own subdirectory {base}/{station}/.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// BasePath returns the directory the discovery is rooted at.
func (d *Discovery) BasePath() string {
	return d.basePath
}

// StationDir returns the directory holding one station's files.
func (d *Discovery) StationDir(station string) string {
	return filepath.Join(d.basePath, station)
}

// HasStationDir reports whether the station's directory exists.
func (d *Discovery) HasStationDir(station string) bool {
	info, err := os.Stat(d.StationDir(station))
	return err == nil && info.IsDir()
}

// FindStationFiles returns every regular file in the station's directory,
// sorted by name so repeated runs see files in the same order.
func (d *Discovery) FindStationFiles(station string) ([]FileInfo, error) {
	dir := d.StationDir(station)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
