package execlogger

import (
	"os"
	"path/filepath"
	"time"
)

// runFolderLayout is the fixed name pattern for run folders, with a space
// between the date and time and underscores inside the time. Retention
// parses folder names under this exact pattern, so it is independent of the
// configurable timestamp format and must be reproduced exactly.
const runFolderLayout = "2006-01-02 15_04_05"

// logFileBaseName is the file name inside each run folder, before the
// configured extension.
const logFileBaseName = "execution_log"

// createRunFolder creates the timestamp-named folder for a run under root
// and returns its path. Two initializations within the same second resolve
// to the same folder; append-mode writes keep both loggers usable.
func createRunFolder(root string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(runFolderLayout))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// runLogFilePath computes the log file path inside a run folder.
func runLogFilePath(runDir, extension string) string {
	return filepath.Join(runDir, logFileBaseName+"."+extension)
}
