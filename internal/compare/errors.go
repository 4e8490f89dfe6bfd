package compare

import "fmt"

// FileReadError reports a file that could not be fully read for hashing.
type FileReadError struct {
	Path string // relative to Root
	Root string
	File string // absolute path on disk
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file: %s - %v", e.File, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
