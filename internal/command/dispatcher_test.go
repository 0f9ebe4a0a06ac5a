package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/dicegoblin/internal/dice"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
)

type failingRoller struct {
	err error
}

func (f failingRoller) Roll(context.Context, dice.Request) (dice.Outcome, error) {
	return dice.Outcome{}, f.err
}

func TestDispatcherReply(t *testing.T) {
	seeded := func() (int64, error) { return 42, nil }
	roller := dice.New(dice.WithSeedFunc(seeded), dice.WithLimits(expr.Limits{MaxDice: 100}))
	d := NewDispatcher(roller)

	tcs := []struct {
		input    string
		want     string
		markdown bool
	}{
		{input: "/start", want: StartMessage, markdown: true},
		{input: "/help", want: HelpMessage, markdown: true},
		{input: "/roll 7 / 2 + 10", want: "13 = 7 / 2 + 10"},
		{input: "/r 5 / 0", want: "0 = 5 / 0"},
		{input: "/roll 3+4)", want: ParseFailedMessage},
		{input: "/roll d0", want: ParseFailedMessage},
		{input: "/roll 101d6", want: TooLargeMessage},
		{input: "/", want: UnknownMessage},
	}
	for _, tc := range tcs {
		reply := d.Reply(context.Background(), tc.input)
		if reply.Text != tc.want {
			t.Errorf("Reply(%q) = %q, want %q", tc.input, reply.Text, tc.want)
		}
		if reply.Markdown != tc.markdown {
			t.Errorf("Reply(%q) markdown = %v, want %v", tc.input, reply.Markdown, tc.markdown)
		}
	}
}

func TestDispatcherReplyCarriesOutcome(t *testing.T) {
	d := NewDispatcher(dice.New())

	reply := d.Reply(context.Background(), "/roll 3d6 + 2")
	if reply.Outcome == nil {
		t.Fatal("expected outcome for successful roll")
	}
	if reply.Outcome.Total < 5 || reply.Outcome.Total > 20 {
		t.Fatalf("total = %d, want [5, 20]", reply.Outcome.Total)
	}
	if !strings.HasSuffix(reply.Text, " + 2") {
		t.Fatalf("reply = %q, want trace ending in + 2", reply.Text)
	}
}

func TestDispatcherReplaysSeed(t *testing.T) {
	d := NewDispatcher(dice.New())
	seed := int64(1234)
	d.Seed = &seed

	first := d.Reply(context.Background(), "/roll 10d20 + 25d6")
	second := d.Reply(context.Background(), "/roll 10d20 + 25d6")
	if first.Text != second.Text {
		t.Fatalf("seeded replies differ: %q vs %q", first.Text, second.Text)
	}
}

func TestDispatcherReplyRollFailure(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher(failingRoller{err: boom})

	reply := d.Reply(context.Background(), "/roll d6")
	if reply.Text != FailedMessage {
		t.Fatalf("reply = %q, want %q", reply.Text, FailedMessage)
	}
	if !errors.Is(reply.Err, boom) {
		t.Fatalf("reply error = %v, want %v", reply.Err, boom)
	}
}
