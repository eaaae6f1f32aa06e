package filesystem

import (
	"os"
	"path/filepath"
)

// List enumerates the immediate children of directory. Entries whose
// metadata cannot be read still appear, with a nil Size. Unlike Search, an
// unreadable directory fails wholesale with the OS error.
func (w *Walker) List(directory string) ([]FileInfo, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		fi := FileInfo{
			Path:   filepath.Join(directory, entry.Name()),
			Name:   entry.Name(),
			IsFile: !entry.IsDir(),
		}
		if info, err := entry.Info(); err == nil {
			size := uint64(info.Size())
			fi.Size = &size
		}
		infos = append(infos, fi)
	}
	return infos, nil
}
