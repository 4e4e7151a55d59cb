package execlogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// runFolder is a valid run folder under the log root: its name parses under
// the fixed run-folder timestamp pattern.
type runFolder struct {
	path  string
	name  string
	stamp time.Time
}

// listRunFolders returns the valid run folders directly under root, sorted
// ascending by name. The name encodes time in fixed-width big-endian order,
// so the lexicographic sort is chronological. Entries that are not
// directories or whose names do not parse under the run-folder pattern were
// not created by the logger and are excluded; they must never be touched.
// A missing root means no runs yet; other read errors propagate.
func listRunFolders(root string) ([]runFolder, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var folders []runFolder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		stamp, err := time.ParseInLocation(runFolderLayout, name, time.Local)
		if err != nil {
			continue
		}
		folders = append(folders, runFolder{
			path:  filepath.Join(root, name),
			name:  name,
			stamp: stamp,
		})
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].name < folders[j].name
	})
	return folders, nil
}

// pruneRunFolders deletes old run folders per the configured policies. The
// age and count policies run independently; either may remove a folder. It
// runs before the new run folder is created, so the current run is never a
// deletion candidate. Enumeration errors propagate; deletion failures are
// best effort, reported to diag and otherwise ignored.
func pruneRunFolders(cfg *Config, diag io.Writer) error {
	// Age policy: delete folders older than the cutoff.
	if days := cfg.DaysStored(); days > 0 {
		folders, err := listRunFolders(cfg.LogDir())
		if err != nil {
			return err
		}

		cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		for _, folder := range folders {
			if folder.stamp.Before(cutoff) {
				if err := os.RemoveAll(folder.path); err != nil {
					fmt.Fprintf(diag, "Failed to delete old log folder %s: %v\n", folder.path, err)
				}
			}
		}
	}

	// Count policy: keep the newest N-1 folders, reserving one slot for the
	// run about to be created.
	if executions := cfg.ExecutionsStored(); executions > 0 {
		folders, err := listRunFolders(cfg.LogDir())
		if err != nil {
			return err
		}

		toDelete := len(folders) - (executions - 1)
		for _, folder := range folders {
			if toDelete <= 0 {
				break
			}
			if err := os.RemoveAll(folder.path); err != nil {
				// toDelete only decrements on success.
				fmt.Fprintf(diag, "Failed to delete old log folder %s: %v\n", folder.path, err)
				continue
			}
			toDelete--
		}
	}

	return nil
}
