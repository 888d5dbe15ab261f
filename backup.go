package gestor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// backupDirName is the snapshot directory inside the data directory.
const backupDirName = "backup"

// RunDailyBackup copies every managed collection file into a dated
// snapshot, at most once per local calendar day. A collection without a
// file yet is skipped. Any copy failure aborts the remaining copies and
// leaves the last-backup marker untouched, so the backup is retried on
// the next invocation instead of being silently marked done.
func (s *Store) RunDailyBackup() error {
	today := s.today().String()
	cfg := s.Config()
	if cfg.LastBackupDate == today {
		return nil
	}

	backupDir := filepath.Join(s.dir, backupDirName)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("could not create backup directory %q: %w", backupDir, err)
	}

	for _, name := range collections {
		data, err := os.ReadFile(s.path(name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not read collection %q for backup: %w", name, err)
		}
		snapshot := filepath.Join(backupDir, fmt.Sprintf("%s_%s.json", name, today))
		if err := os.WriteFile(snapshot, data, 0644); err != nil {
			return fmt.Errorf("could not write backup %q: %w", snapshot, err)
		}
	}

	cfg.LastBackupDate = today
	if err := s.SaveConfig(cfg); err != nil {
		return fmt.Errorf("backup written but %s not marked done: %w", today, err)
	}
	return nil
}
