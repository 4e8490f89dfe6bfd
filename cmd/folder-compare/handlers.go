package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/folder-compare/internal/compare"
	"github.com/taigrr/folder-compare/internal/pathfilter"
	"github.com/taigrr/folder-compare/internal/types"
	"github.com/taigrr/folder-compare/internal/walker"
)

func handleCompare(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, CompareOutput, error) {
	base := strings.TrimSpace(input.Base)
	target := strings.TrimSpace(input.Target)
	if base == "" || target == "" {
		return &mcp.CallToolResult{IsError: true}, CompareOutput{}, fmt.Errorf("base and target are required")
	}

	result, err := compare.Run(types.CompareParams{
		Base:     base,
		Target:   target,
		Excluded: input.Excluded,
	}, compare.WithStrict(input.Strict))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CompareOutput{}, err
	}

	out := CompareOutput{
		Changed:        result.Changed,
		New:            result.New,
		BaseFiles:      result.BaseFiles,
		TargetFiles:    result.TargetFiles,
		HasDifferences: result.HasDifferences(),
	}
	if input.Unchanged {
		out.Unchanged = result.Unchanged
	}

	return nil, out, nil
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	root := strings.TrimSpace(input.Root)
	if root == "" {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, fmt.Errorf("root is required")
	}

	pf, err := pathfilter.New(input.Excluded)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	files, err := walker.Walk(root, pf, walker.Options{})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	paths := files.Sorted()
	return nil, ListOutput{Files: paths, Total: len(paths)}, nil
}
