package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dicegoblin/internal/command"
	"github.com/louisbranch/dicegoblin/internal/dice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Roller rolls a request.
type Roller interface {
	Roll(ctx context.Context, req dice.Request) (dice.Outcome, error)
}

// RollInput represents the MCP tool input for a roll.
type RollInput struct {
	Expression string `json:"expression" jsonschema:"roll expression such as 3d6 + 2 or (d20 - 1) * 2"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"seed of a previous roll to replay it"`
}

// RollResult represents the MCP tool output for a roll.
type RollResult struct {
	ID    string `json:"id" jsonschema:"roll identifier"`
	Total int64  `json:"total" jsonschema:"total value of the roll"`
	Trace string `json:"trace" jsonschema:"individual dice and arithmetic that produced the total"`
	Text  string `json:"text" jsonschema:"total and trace formatted as total = trace"`
	Seed  int64  `json:"seed" jsonschema:"seed that replays this roll"`
}

// RollTool defines the MCP tool schema for rolls.
func RollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll",
		Description: "Rolls a dice expression in NdS notation with + - * / and parentheses",
	}
}

// RollHandler rolls an expression. Invalid or oversized expressions are
// reported as tool errors carrying the chat reply text.
func RollHandler(roller Roller) mcp.ToolHandlerFor[RollInput, RollResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollInput) (*mcp.CallToolResult, RollResult, error) {
		if roller == nil {
			return nil, RollResult{}, fmt.Errorf("roller is not configured")
		}

		outcome, err := roller.Roll(ctx, dice.Request{Expression: input.Expression, Seed: input.Seed})
		switch {
		case errors.Is(err, dice.ErrParse):
			return nil, RollResult{}, fmt.Errorf("%s: %w", command.ParseFailedMessage, err)
		case errors.Is(err, dice.ErrTooLarge):
			return nil, RollResult{}, fmt.Errorf("%s: %w", command.TooLargeMessage, err)
		case err != nil:
			return nil, RollResult{}, fmt.Errorf("roll failed: %w", err)
		}

		result := RollResult{
			ID:    outcome.ID,
			Total: outcome.Total,
			Trace: outcome.Trace,
			Text:  outcome.String(),
			Seed:  outcome.Seed,
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
		}, result, nil
	}
}
