package service

import (
	"context"

	"github.com/louisbranch/dicegoblin/internal/command"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SyntaxResourceURI addresses the roll syntax reference.
const SyntaxResourceURI = "dicegoblin://help/syntax"

// SyntaxResource describes the roll syntax reference.
func SyntaxResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "roll_syntax",
		Title:       "Roll expression syntax",
		Description: "How to write roll expressions and read their traces",
		MIMEType:    "text/markdown",
		URI:         SyntaxResourceURI,
	}
}

// SyntaxResourceHandler serves the roll syntax reference.
func SyntaxResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := SyntaxResourceURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != SyntaxResourceURI {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     command.SyntaxMessage,
				},
			},
		}, nil
	}
}
