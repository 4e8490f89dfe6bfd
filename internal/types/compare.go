// Package types defines the data structures shared across folder-compare.
package types

type (
	// CompareParams contains the inputs of a single comparison.
	CompareParams struct {
		Base     string   `json:"base"`
		Target   string   `json:"target"`
		Excluded []string `json:"excluded,omitempty"`
	}

	// CompareResult holds the classification of every file found under the target root.
	// All paths are relative to their root and use forward slashes.
	CompareResult struct {
		Changed   []string `json:"changed"`
		New       []string `json:"new"`
		Unchanged []string `json:"unchanged,omitempty"`

		BaseFiles   int `json:"baseFiles"`
		TargetFiles int `json:"targetFiles"`
	}
)

// HasDifferences reports whether any file was classified as changed or new.
func (r *CompareResult) HasDifferences() bool {
	return len(r.Changed) > 0 || len(r.New) > 0
}
