package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

type (
	// CompareInput contains parameters for comparing two directory trees.
	CompareInput struct {
		Base      string   `json:"base" jsonschema:"Base directory; files only here are not reported"`
		Target    string   `json:"target" jsonschema:"Target directory whose files are classified"`
		Excluded  []string `json:"excluded,omitempty" jsonschema:"Exclusion patterns (regular expressions, or glob: prefixed globs)"`
		Unchanged bool     `json:"unchanged,omitempty" jsonschema:"Also return unchanged files (default: false)"`
		Strict    bool     `json:"strict,omitempty" jsonschema:"Fail on unreadable entries instead of skipping them (default: false)"`
	}

	// CompareOutput contains the classification of the target tree.
	CompareOutput struct {
		Changed        []string `json:"changed"`
		New            []string `json:"new"`
		Unchanged      []string `json:"unchanged,omitempty"`
		BaseFiles      int      `json:"baseFiles"`
		TargetFiles    int      `json:"targetFiles"`
		HasDifferences bool     `json:"hasDifferences"`
	}

	// ListInput contains parameters for listing the files of a tree.
	ListInput struct {
		Root     string   `json:"root" jsonschema:"Directory to list"`
		Excluded []string `json:"excluded,omitempty" jsonschema:"Exclusion patterns (regular expressions, or glob: prefixed globs)"`
	}

	// ListOutput contains the relative paths of every file found.
	ListOutput struct {
		Files []string `json:"files"`
		Total int      `json:"total"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare two directory trees. Returns files under target that are new (absent from base) or changed (different content). Files only in base are not reported.",
	}, handleCompare)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List every regular file below a directory, relative to it, after applying exclusion patterns.",
	}, handleList)
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the comparison as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "folder-compare",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
