package kubera

import "fmt"

// StorageError is a fatal snapshot-store failure: directory creation,
// permissions, or a snapshot file that no longer parses. It always aborts the
// operation in progress; a merely missing snapshot is not an error.
type StorageError struct {
	Op   string // "create", "save", "load", "list", "delete"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, path string, err error) *StorageError {
	return &StorageError{Op: op, Path: path, Err: err}
}
