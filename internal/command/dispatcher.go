package command

import (
	"context"
	"errors"
	"log"

	"github.com/louisbranch/dicegoblin/internal/dice"
)

// Roller rolls a parsed request.
type Roller interface {
	Roll(ctx context.Context, req dice.Request) (dice.Outcome, error)
}

// Reply is the answer to a chat message.
type Reply struct {
	Command Command
	Text    string
	// Markdown reports whether Text uses chat markdown.
	Markdown bool
	// Outcome is set for successful rolls.
	Outcome *dice.Outcome
	// Err is the roll failure, if any.
	Err error
}

// Dispatcher turns chat messages into replies.
type Dispatcher struct {
	roller Roller
	// Seed replays every roll with the same seed when set.
	Seed *int64
}

// NewDispatcher creates a Dispatcher backed by roller.
func NewDispatcher(roller Roller) *Dispatcher {
	return &Dispatcher{roller: roller}
}

// Reply answers text. Roll failures become user-facing messages; they are
// never returned as errors.
func (d *Dispatcher) Reply(ctx context.Context, text string) Reply {
	cmd := Parse(text)
	switch cmd.Kind {
	case KindStart:
		return Reply{Command: cmd, Text: StartMessage, Markdown: true}
	case KindHelp:
		return Reply{Command: cmd, Text: HelpMessage, Markdown: true}
	case KindRoll:
		return d.roll(ctx, cmd)
	default:
		return Reply{Command: cmd, Text: UnknownMessage}
	}
}

func (d *Dispatcher) roll(ctx context.Context, cmd Command) Reply {
	outcome, err := d.roller.Roll(ctx, dice.Request{Expression: cmd.Expression, Seed: d.Seed})
	if err != nil {
		reply := Reply{Command: cmd, Err: err}
		switch {
		case errors.Is(err, dice.ErrParse):
			reply.Text = ParseFailedMessage
		case errors.Is(err, dice.ErrTooLarge):
			reply.Text = TooLargeMessage
		default:
			log.Printf("roll %q: %v", cmd.Expression, err)
			reply.Text = FailedMessage
		}
		return reply
	}
	log.Printf("roll %s: %s => %s", outcome.ID, cmd.Expression, outcome)
	return Reply{Command: cmd, Text: outcome.String(), Outcome: &outcome}
}
