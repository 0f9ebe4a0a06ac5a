// Package command interprets chat messages addressed to Dice Goblin.
package command

import (
	"strings"

	"golang.org/x/text/width"
)

// Kind identifies a chat command.
type Kind int

const (
	// KindUnknown is a message with nothing to act on.
	KindUnknown Kind = iota
	// KindStart asks for the introduction.
	KindStart
	// KindHelp asks for the command and syntax reference.
	KindHelp
	// KindRoll carries a roll expression.
	KindRoll
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindHelp:
		return "help"
	case KindRoll:
		return "roll"
	default:
		return "unknown"
	}
}

// Command is a parsed chat message.
type Command struct {
	Kind Kind
	// Expression is the roll text for KindRoll, untrimmed of inner spaces.
	Expression string
}

// Parse recognizes "/start", "/help" and roll messages. The leading slash is
// optional, command words are case-insensitive, and full-width characters are
// folded to their ASCII forms first.
//
//	/start            KindStart
//	/help             KindHelp
//	/roll 2d6 + 1     KindRoll "2d6 + 1"
//	/r@DiceBot d20    KindRoll "d20"
//	/3d6              KindRoll "3d6"
func Parse(text string) Command {
	text = strings.TrimSpace(width.Fold.String(text))
	text = strings.TrimPrefix(text, "/")

	if cutWord(text, "start") {
		return Command{Kind: KindStart}
	}
	if cutWord(text, "help") {
		return Command{Kind: KindHelp}
	}

	rest := text
	for _, prefix := range []string{"roll", "r"} {
		if after, ok := cutPrefixFold(text, prefix); ok {
			rest = dropMention(after)
			break
		}
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Command{Kind: KindUnknown}
	}
	return Command{Kind: KindRoll, Expression: rest}
}

// cutWord reports whether text starts with word as a whole command: followed
// by a mention, whitespace, or the end of text.
func cutWord(text, word string) bool {
	after, ok := cutPrefixFold(text, word)
	if !ok {
		return false
	}
	after = dropMention(after)
	return after == "" || isSpace(after[0])
}

func cutPrefixFold(text, prefix string) (string, bool) {
	if len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
		return text, false
	}
	return text[len(prefix):], true
}

// dropMention removes an "@botname" suffix attached to a command word.
func dropMention(text string) string {
	if !strings.HasPrefix(text, "@") {
		return text
	}
	if i := strings.IndexFunc(text, func(r rune) bool { return r < 0x80 && isSpace(byte(r)) }); i >= 0 {
		return text[i:]
	}
	return ""
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
