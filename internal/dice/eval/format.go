package eval

import (
	"strconv"
	"strings"
)

// Trace renders r as a single line using the input operator symbols.
//
//	Rolls      [3, 5, 2]
//	Histogram  [4:2, 6:1]
//	Aggregate  [118]
func Trace(r Result) string {
	var b strings.Builder
	writeTrace(&b, r)
	return b.String()
}

// Format renders r as "<total> = <trace>".
func Format(r Result) string {
	return strconv.FormatInt(Total(r), 10) + " = " + Trace(r)
}

func writeTrace(b *strings.Builder, r Result) {
	switch node := r.(type) {
	case Num:
		b.WriteString(strconv.FormatInt(node.Value, 10))
	case Rolls:
		b.WriteByte('[')
		for i, face := range node.Faces {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatInt(face, 10))
		}
		b.WriteByte(']')
	case Histogram:
		b.WriteByte('[')
		for i, fc := range node.Counts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatInt(fc.Face, 10))
			b.WriteByte(':')
			b.WriteString(strconv.FormatInt(fc.Count, 10))
		}
		b.WriteByte(']')
	case Aggregate:
		b.WriteByte('[')
		b.WriteString(strconv.FormatInt(node.Sum, 10))
		b.WriteByte(']')
	case Group:
		b.WriteByte('(')
		writeTrace(b, node.Inner)
		b.WriteByte(')')
	case Binary:
		writeTrace(b, node.Left)
		b.WriteByte(' ')
		b.WriteString(node.Op.String())
		b.WriteByte(' ')
		writeTrace(b, node.Right)
	}
}
