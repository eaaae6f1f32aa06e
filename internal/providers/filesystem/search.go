package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// SearchLimit caps the number of entries a single search visits. The cap
// counts visited entries, not matches, and truncation is silent; existing
// callers depend on that.
const SearchLimit = 1000

// Walker performs bounded recursive search and shallow listing over a
// directory tree.
type Walker struct {
	limit int64
}

// NewWalker creates a walker with the default visit cap.
func NewWalker() *Walker {
	return &Walker{limit: SearchLimit}
}

// Search descends directory recursively and collects every entry whose
// name, lowercased, contains pattern lowercased. The root itself counts as
// a visited entry and may match. Unreadable entries and subtrees are
// skipped silently, and a missing root simply yields no matches; Search has
// no failure path.
func (w *Walker) Search(directory, pattern string) []FileInfo {
	var (
		mu      sync.Mutex
		visited atomic.Int64
	)
	results := []FileInfo{} // empty, not null, on the wire
	needle := strings.ToLower(pattern)

	conf := fastwalk.Config{Follow: false}

	// The only error Walk can surface is a missing or unreadable root,
	// which callers observe as zero matches.
	_ = fastwalk.Walk(&conf, directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries, don't count them
		}
		if visited.Add(1) > w.limit {
			return filepath.SkipAll
		}

		name := d.Name()
		if !strings.Contains(strings.ToLower(name), needle) {
			return nil
		}

		fi := FileInfo{Path: path, Name: name, IsFile: !d.IsDir()}
		if info, err := d.Info(); err == nil {
			size := uint64(info.Size())
			fi.Size = &size
		}

		mu.Lock()
		results = append(results, fi)
		mu.Unlock()
		return nil
	})

	return results
}
