// Package execlogger provides per-execution logging: every run of the host
// process gets its own timestamp-named folder under a configurable root, with
// automatic housekeeping of old run folders.
//
// Features:
//   - One timestamped folder and log file per process execution
//   - Retention of old run folders by age, by count, or both
//   - Level-based filtering with custom severity levels
//   - Configurable message template with lazy placeholder substitution
//   - strftime-style timestamp formatting
//   - Configuration loading from TOML, YAML and JSON files
//   - Hot-swappable process-wide logger, safe for concurrent use
//   - Output to both standard output and the run's log file
//
// The package-level functions (Initialize, Info, Error, ...) operate on a
// process-wide registry. Re-initialization is supported and expected: a
// long-running process can call Initialize again to start a fresh run folder,
// and any goroutine still holding the previous logger keeps a usable instance.
package execlogger
