package pathfilter

import (
	"errors"
	"regexp/syntax"
	"strings"
	"testing"
)

func mustNew(t *testing.T, patterns ...string) *PathFilter {
	t.Helper()
	pf, err := New(patterns)
	if err != nil {
		t.Fatalf("New(%q) error = %v", patterns, err)
	}
	return pf
}

func TestPathFilter_EmptyExcludesNothing(t *testing.T) {
	for _, pf := range []*PathFilter{mustNew(t), mustNew(t, []string{}...)} {
		tests := []string{"", "a.txt", "/tmp/base/nested/deep/file.bin", `C:\data\x.doc`}
		for _, path := range tests {
			if pf.IsExcluded(path) {
				t.Errorf("IsExcluded(%q) = true, want false", path)
			}
		}
	}
}

func TestPathFilter_SubstringSemantics(t *testing.T) {
	pf := mustNew(t, ".doc", ".txt")

	tests := []struct {
		path string
		want bool
	}{
		{"base/docs/readme.doc", true},
		{"base/docs/notes.txt", true},
		{"base/a.bin", false},
		{"base/test.xls", false},
		{"base/test.abc", false},
		// unescaped dot matches any character, as a regular expression should
		{"base/footxt", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pf.IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_AnyPatternExcludes(t *testing.T) {
	pf := mustNew(t, `\.log$`, `^build/`, `cache`)

	tests := []struct {
		path string
		want bool
	}{
		{"app/server.log", true},
		{"app/server.log.gz", false},
		{"build/out.o", true},
		{"src/build/out.o", false},
		{"src/.cache/x", true},
		{"src/main.go", false},
	}

	for _, tt := range tests {
		if got := pf.IsExcluded(tt.path); got != tt.want {
			t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathFilter_BackslashesNormalized(t *testing.T) {
	pf := mustNew(t, "nested/deep/")

	if !pf.IsExcluded(`root\nested\deep\file.bin`) {
		t.Error("backslash path should be matched in forward-slash form")
	}
}

func TestPathFilter_GlobPatterns(t *testing.T) {
	t.Run("star stays within a segment", func(t *testing.T) {
		pf := mustNew(t, "glob:*.log")

		tests := []struct {
			path string
			want bool
		}{
			{"/srv/base/app.log", true},
			{"/srv/base/logs/app.log", true},
			{"/srv/base/app.log.1", false},
			{"/srv/base/applog", false},
		}

		for _, tt := range tests {
			if got := pf.IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("double star crosses segments", func(t *testing.T) {
		pf := mustNew(t, "glob:temp*/**")

		tests := []struct {
			path string
			want bool
		}{
			{"/srv/base/temp/file.md", true},
			{"/srv/base/temp1/a/b/file.md", true},
			{"/srv/base/atemp/file.md", false},
		}

		for _, tt := range tests {
			if got := pf.IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		pf := mustNew(t, "glob:(archive)/**", "glob:[trash]/**", "glob:backup.2024/**")

		tests := []struct {
			path string
			want bool
		}{
			{"r/(archive)/old.md", true},
			{"r/archive/old.md", false},
			{"r/[trash]/deleted.md", true},
			{"r/trash/deleted.md", false},
			{"r/backup.2024/notes.md", true},
			{"r/backup_2024/notes.md", false},
		}

		for _, tt := range tests {
			if got := pf.IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("question mark", func(t *testing.T) {
		pf := mustNew(t, "glob:v?.bin")
		if !pf.IsExcluded("r/v1.bin") {
			t.Error(`IsExcluded("r/v1.bin") = false, want true`)
		}
		if pf.IsExcluded("r/v10.bin") {
			t.Error(`IsExcluded("r/v10.bin") = true, want false`)
		}
	})
}

func TestPathFilter_IsDirExcluded(t *testing.T) {
	pf := mustNew(t, "glob:node_modules/**", `\.git$`)

	tests := []struct {
		path string
		want bool
	}{
		{"/srv/base/node_modules", true},
		{"/srv/base/node_modules/", true},
		{"/srv/base/pkg/node_modules", true},
		{"/srv/base/.git", true},
		{"/srv/base/src", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pf.IsDirExcluded(tt.path); got != tt.want {
				t.Errorf("IsDirExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		index    int
	}{
		{"unclosed group", []string{"(abc"}, 0},
		{"unclosed class", []string{".txt", "[a-"}, 1},
		{"bad repetition", []string{"ok", "fine", "*start"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := New(tt.patterns)
			if err == nil {
				t.Fatalf("New(%q) error = nil, want PatternCompileError", tt.patterns)
			}
			if pf != nil {
				t.Errorf("New(%q) returned a filter alongside an error", tt.patterns)
			}

			var pce *PatternCompileError
			if !errors.As(err, &pce) {
				t.Fatalf("error type = %T, want *PatternCompileError", err)
			}
			if pce.Index != tt.index {
				t.Errorf("Index = %d, want %d", pce.Index, tt.index)
			}
			if pce.Pattern != tt.patterns[tt.index] {
				t.Errorf("Pattern = %q, want %q", pce.Pattern, tt.patterns[tt.index])
			}

			var syntaxErr *syntax.Error
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error should unwrap to *syntax.Error, got %v", pce.Err)
			}
			if !strings.Contains(err.Error(), tt.patterns[tt.index]) {
				t.Errorf("Error() = %q, should name the pattern", err.Error())
			}
		})
	}
}

func TestPathFilter_Patterns(t *testing.T) {
	in := []string{"a", "glob:b/**"}
	pf := mustNew(t, in...)

	got := pf.Patterns()
	got[0] = "mutated"
	if pf.Patterns()[0] != "a" {
		t.Error("Patterns() must return a copy")
	}
	if pf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pf.Len())
	}
}
