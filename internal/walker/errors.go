package walker

import "fmt"

// RootNotFoundError reports a root directory that does not exist.
type RootNotFoundError struct {
	Root string
	Err  error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("root not found: %s", e.Root)
}

func (e *RootNotFoundError) Unwrap() error {
	return e.Err
}

// NotADirectoryError reports a root that exists but is not a directory.
type NotADirectoryError struct {
	Root string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("root is not a directory: %s", e.Root)
}

// EntryReadError reports an entry that could not be read during traversal.
type EntryReadError struct {
	Path string
	Err  error
}

func (e *EntryReadError) Error() string {
	return fmt.Sprintf("failed to read entry: %s - %v", e.Path, e.Err)
}

func (e *EntryReadError) Unwrap() error {
	return e.Err
}
