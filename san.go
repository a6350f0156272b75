// san.go renders a played Move as Standard Algebraic Notation. Grounded in
// the teacher's san.go (Move2SAN/disambiguate), generalized from the
// teacher's packed Move encoding to the tagged Move struct and its
// Before/After Position snapshots (used here to resolve disambiguation and
// check/mate suffixes without recomputing legal moves from scratch).
package caissa

import "strings"

// SAN renders m (which must carry its Before/After snapshots, as set by
// Position.Apply) in Standard Algebraic Notation.
func SAN(m Move) string {
	if m.Kind == Castle {
		s := "O-O"
		if m.CastleSide == QueenSide {
			s = "O-O-O"
		}
		return s + checkSuffix(m)
	}

	var sb strings.Builder
	if m.Role != Pawn {
		sb.WriteByte(roleLetters[m.Role])
		sb.WriteString(disambiguate(m))
	} else if m.IsCapture {
		sb.WriteString(m.From.File().String())
	}
	if m.IsCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Kind == PromotionMove {
		sb.WriteByte('=')
		sb.WriteByte(roleLetters[m.Promotion])
	}
	sb.WriteString(checkSuffix(m))
	return sb.String()
}

// checkSuffix returns "+" or "#" based on m.After, or "" if Before/After
// weren't attached (e.g. a move built by hand rather than via Apply).
func checkSuffix(m Move) string {
	if m.After == nil {
		return ""
	}
	after := *m.After
	if !after.Variant.InCheck(after) {
		return ""
	}
	if len(after.Variant.ValidMoves(after)) == 0 {
		return "#"
	}
	return "+"
}

// disambiguate returns the minimal file/rank/square prefix needed to tell m
// apart from every other legal move of the same role to the same square, per
// spec.md's file-before-rank-before-square preference (see DESIGN.md).
func disambiguate(m Move) string {
	if m.Before == nil {
		return ""
	}
	before := *m.Before
	var sameFile, sameRank, any bool
	for _, other := range before.Variant.ValidMoves(before) {
		if other.Role != m.Role || other.To != m.To || other.From == m.From {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}
