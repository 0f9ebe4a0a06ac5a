package command

import "testing"

func TestParse(t *testing.T) {
	tcs := []struct {
		input string
		want  Command
	}{
		{input: "/start", want: Command{Kind: KindStart}},
		{input: "START", want: Command{Kind: KindStart}},
		{input: "/start now", want: Command{Kind: KindStart}},
		{input: "/start@DiceGoblinBot", want: Command{Kind: KindStart}},
		{input: "/help", want: Command{Kind: KindHelp}},
		{input: "  /Help  ", want: Command{Kind: KindHelp}},
		{input: "/help@DiceGoblinBot me", want: Command{Kind: KindHelp}},
		{input: "/roll 2d6 + 1", want: Command{Kind: KindRoll, Expression: "2d6 + 1"}},
		{input: "/ROLL d20", want: Command{Kind: KindRoll, Expression: "d20"}},
		{input: "/r 3d10", want: Command{Kind: KindRoll, Expression: "3d10"}},
		{input: "/rd6", want: Command{Kind: KindRoll, Expression: "d6"}},
		{input: "/roll@DiceGoblinBot 2d6", want: Command{Kind: KindRoll, Expression: "2d6"}},
		{input: "/r@DiceGoblinBot (d6 - 1) * 2", want: Command{Kind: KindRoll, Expression: "(d6 - 1) * 2"}},
		{input: "/3d6", want: Command{Kind: KindRoll, Expression: "3d6"}},
		{input: "3d6", want: Command{Kind: KindRoll, Expression: "3d6"}},
		{input: "/startle", want: Command{Kind: KindRoll, Expression: "startle"}},
		{input: "/helpful", want: Command{Kind: KindRoll, Expression: "helpful"}},
		{input: "/３ｄ６＋１", want: Command{Kind: KindRoll, Expression: "3d6+1"}},
		{input: "", want: Command{Kind: KindUnknown}},
		{input: "/", want: Command{Kind: KindUnknown}},
		{input: "/roll", want: Command{Kind: KindUnknown}},
		{input: "/roll@DiceGoblinBot", want: Command{Kind: KindUnknown}},
	}

	for _, tc := range tcs {
		if got := Parse(tc.input); got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tcs := map[Kind]string{
		KindUnknown: "unknown",
		KindStart:   "start",
		KindHelp:    "help",
		KindRoll:    "roll",
	}
	for kind, want := range tcs {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
