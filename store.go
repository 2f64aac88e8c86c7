package kubera

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
)

// snapshotFileRE matches the one-file-per-date layout; anything else found in
// the data directory is ignored.
var snapshotFileRE = regexp.MustCompile(`^snapshot_(\d{4}-\d{2}-\d{2})\.json$`)

// SnapshotStore persists one snapshot file per calendar date in a single
// directory. Contents are sensitive financial data, so the directory is
// owner-only and so are the files.
type SnapshotStore struct {
	dir string
}

// OpenStore creates the data directory if needed (owner-only permissions) and
// returns the store.
func OpenStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, storageErr("create", dir, err)
	}
	return &SnapshotStore{dir: dir}, nil
}

// Dir returns the directory the store persists into.
func (s *SnapshotStore) Dir() string { return s.dir }

func (s *SnapshotStore) path(on Date) string {
	return filepath.Join(s.dir, "snapshot_"+on.String()+".json")
}

// Save persists the snapshot under its calendar date, replacing any snapshot
// already stored for that date. The write is atomic (temp file then rename)
// so a concurrent reader never sees a partial file, and the temp file is
// created owner-only so the data is never visible with wider permissions.
func (s *SnapshotStore) Save(snap *PortfolioSnapshot) error {
	on, err := snap.Date()
	if err != nil {
		return storageErr("save", s.dir, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return storageErr("save", s.path(on), err)
	}

	path := s.path(on)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return storageErr("save", tmp, err)
	}
	if err := atomic.ReplaceFile(tmp, path); err != nil {
		os.Remove(tmp)
		return storageErr("save", path, err)
	}
	return nil
}

// Load returns the snapshot stored for the exact calendar date, or nil when
// there is none. A file that exists but does not parse is a StorageError, not
// a nil.
func (s *SnapshotStore) Load(on Date) (*PortfolioSnapshot, error) {
	path := s.path(on)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("load", path, err)
	}

	var snap PortfolioSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, storageErr("load", path, err)
	}
	return &snap, nil
}

// Latest returns the most recent stored snapshot, or nil when the store is
// empty.
func (s *SnapshotStore) Latest() (*PortfolioSnapshot, error) {
	dates, err := s.ListDates()
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	return s.Load(dates[0])
}

// ListDates returns every date with a stored snapshot, most recent first.
// Entries that do not follow the snapshot naming scheme are skipped.
func (s *SnapshotStore) ListDates() ([]Date, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, storageErr("list", s.dir, err)
	}

	var dates []Date
	for _, e := range entries {
		m := snapshotFileRE.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		on, err := time.Parse(DateFormat, m[1])
		if err != nil {
			continue
		}
		dates = append(dates, NewDate(on.Date()))
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

// Delete removes the snapshot for the date. Deleting a date that has no
// snapshot is a no-op.
func (s *SnapshotStore) Delete(on Date) error {
	path := s.path(on)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return storageErr("delete", path, err)
	}
	return nil
}

// Cleanup deletes stale dense history per the retention policy and returns the
// number of snapshots removed. Individual deletion failures do not stop the
// sweep; they are combined into the returned error.
func (s *SnapshotStore) Cleanup(today Date, retentionDays int) (int, error) {
	dates, err := s.ListDates()
	if err != nil {
		return 0, err
	}

	var errs error
	deleted := 0
	for _, on := range PruneCandidates(dates, today, retentionDays) {
		if err := s.Delete(on); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		log.Printf("delete-snapshot-file name=%q", s.path(on))
		deleted++
	}
	return deleted, errs
}
