package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery over the raw-data directory.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance rooted at basePath.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindReportFiles lists every regular file in the base directory in name
// order. Excel lock files ("~$" prefix) are skipped; everything else is
// returned so that files with malformed names surface as logged extract
// failures rather than being silently ignored. The base path may be
// relative; it is read as-is so that relative parameter paths resolve
// against the working directory exactly once.
func (d *Discovery) FindReportFiles() ([]FileInfo, error) {
	entries, err := os.ReadDir(d.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.basePath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(d.basePath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FindCSVFiles finds all CSV files in the base directory, in name order.
// Used to inspect previously exported reports.
func (d *Discovery) FindCSVFiles() ([]FileInfo, error) {
	all, err := d.FindReportFiles()
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, f := range all {
		if strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			files = append(files, f)
		}
	}
	return files, nil
}
