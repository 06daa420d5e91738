// Package kifu encodes and decodes match records: a pfen-like board string,
// a compact two-letter-per-piece tumo sequence encoding, and the JSON shapes
// the simulators and GA tuner persist to internal/storage.
package kifu

import (
	"strings"

	"github.com/sorapuyo/ghoti/internal/puyo"
)

// EncodeField renders f as a pfen-like string: one '/'-separated run per
// column, each run listing that column's cells bottom-to-top as single
// lowercase colour characters (r/b/y/g/o), matching convert_core_field.
func EncodeField(f *puyo.Field) string {
	var b strings.Builder
	for x := 1; x <= puyo.Width; x++ {
		for y := 1; y <= f.Height(x); y++ {
			b.WriteByte(f.Color(x, y).Byte())
		}
		b.WriteByte('/')
	}
	return b.String()
}

// DecodeField parses a pfen-like board string back into a Field.
func DecodeField(s string) *puyo.Field {
	return puyo.FieldFromColumns(strings.Split(s, "/"))
}

// EncodeTumoSeq renders a tumo sequence as ["RB", "YG", ...]: two
// upper-case colour characters per piece, axis then child.
func EncodeTumoSeq(seq []puyo.Kumipuyo) []string {
	out := make([]string, len(seq))
	for i, k := range seq {
		out[i] = strings.ToUpper(string(k.Axis.Byte())) + strings.ToUpper(string(k.Child.Byte()))
	}
	return out
}

// DecodeTumoSeq parses the ["RB", "YG", ...] encoding back into Kumipuyo
// values. Entries that aren't exactly two characters are skipped.
func DecodeTumoSeq(tumos []string) []puyo.Kumipuyo {
	seq := make([]puyo.Kumipuyo, 0, len(tumos))
	for _, t := range tumos {
		if len(t) != 2 {
			continue
		}
		seq = append(seq, puyo.NewKumipuyo(puyo.ColorFromByte(t[0]), puyo.ColorFromByte(t[1])))
	}
	return seq
}
