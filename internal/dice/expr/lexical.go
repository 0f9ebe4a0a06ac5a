package expr

import "strconv"

// parser consumes a prefix of in and returns the value and the remainder.
// On failure it returns ok=false and the remainder is ignored by callers.
type parser[T any] func(in string) (value T, rest string, ok bool)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipSpace drops leading whitespace. It never fails.
func skipSpace(in string) string {
	i := 0
	for i < len(in) && isSpace(in[i]) {
		i++
	}
	return in[i:]
}

// integer recognizes a run of decimal digits that fits in an int64.
// A digit run that overflows is a failure, not a truncation.
func integer(in string) (int64, string, bool) {
	i := 0
	for i < len(in) && isDigit(in[i]) {
		i++
	}
	if i == 0 {
		return 0, in, false
	}
	n, err := strconv.ParseInt(in[:i], 10, 64)
	if err != nil {
		return 0, in, false
	}
	return n, in[i:], true
}

// oneOf recognizes a single byte from set.
func oneOf(set string) parser[byte] {
	return func(in string) (byte, string, bool) {
		if in == "" {
			return 0, in, false
		}
		for i := 0; i < len(set); i++ {
			if in[0] == set[i] {
				return in[0], in[1:], true
			}
		}
		return 0, in, false
	}
}

// char recognizes exactly c.
func char(c byte) parser[byte] {
	return oneOf(string(c))
}
