// Package output renders comparison results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/taigrr/folder-compare/internal/types"
)

// Status labels used by every format.
const (
	StatusChanged   = "changed"
	StatusNew       = "new"
	StatusUnchanged = "unchanged"
)

// Entry is one classified path.
type Entry struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// Entries flattens a result into path-sorted entries. Unchanged files are
// included only when withUnchanged is set.
func Entries(result *types.CompareResult, withUnchanged bool) []Entry {
	var entries []Entry
	for _, p := range result.Changed {
		entries = append(entries, Entry{Path: p, Status: StatusChanged})
	}
	for _, p := range result.New {
		entries = append(entries, Entry{Path: p, Status: StatusNew})
	}
	if withUnchanged {
		for _, p := range result.Unchanged {
			entries = append(entries, Entry{Path: p, Status: StatusUnchanged})
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries
}

// Render writes result to w in the named format ("text", "json" or "tree").
// rootLabel names the tree root and is ignored by the other formats.
func Render(w io.Writer, result *types.CompareResult, format, rootLabel string, withUnchanged bool) error {
	switch format {
	case "", "text":
		return renderText(w, result, withUnchanged)
	case "json":
		return renderJSON(w, result, withUnchanged)
	case "tree":
		_, err := io.WriteString(w, RenderTree(rootLabel, Entries(result, withUnchanged)))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderText(w io.Writer, result *types.CompareResult, withUnchanged bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range Entries(result, withUnchanged) {
		fmt.Fprintf(tw, "%s\t%s\n", e.Status, e.Path)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, result *types.CompareResult, withUnchanged bool) error {
	out := *result
	if !withUnchanged {
		out.Unchanged = nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
