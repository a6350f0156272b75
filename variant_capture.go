// variant_capture.go implements the two variants that change what a
// "capture" means to the outcome of the game: Antichess (captures are
// compulsory, kings aren't royal, running out of moves wins) and Atomic
// (captures detonate, destroying nearby non-pawn pieces including the
// capturer). Both are new relative to the teacher; grounded in spec.md
// §4.5's description of each.
package caissa

// Antichess (giveaway/losing chess): capturing is mandatory whenever
// possible, kings have no royal status (they may be captured like any other
// piece, and may move into an attacked square), and a side with no legal
// move — whether stalemated or stripped of all pieces — wins.
type Antichess struct{ baseVariant }

func NewAntichess() Variant { return Antichess{baseVariant{key: "antichess"}} }

func (v Antichess) Royal(Color) bool { return false }

// PromotionRoles adds King to the ordinary promotion set: a pawn reaching
// the back rank may become a (non-royal) king, since Antichess kings carry
// no check/mate status anyway (spec.md §4.5, §9 Open Questions).
func (v Antichess) PromotionRoles() []Role {
	return []Role{Queen, Rook, Bishop, Knight, King}
}

func (v Antichess) ValidMoves(p Position) []Move {
	candidates := pseudoLegalMoves(p) // no castling, no check-safety filter
	captures := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if m.IsCapture {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return candidates
}

func (v Antichess) InCheck(Position) bool { return false }

func (v Antichess) Checkmate(Position) bool { return false }

func (v Antichess) Stalemate(Position) bool { return false }

func (v Antichess) InsufficientMaterial(Position) bool { return false }

func (v Antichess) SpecialEnd(p Position) (bool, Color, bool) {
	if len(p.Variant.ValidMoves(p)) == 0 {
		return true, p.ActiveColor, true // the side with no move wins
	}
	return false, White, false
}

func (v Antichess) ValidBoard(board Board, strict bool) bool {
	return board.Valid(false) // king count/placement rules don't apply
}

// Atomic: any capture explodes, removing the capturing piece and every
// non-pawn piece adjacent (including diagonally) to the capture square. A
// move that would explode the mover's own king is illegal; exploding the
// opponent's king wins immediately.
type Atomic struct{ baseVariant }

func NewAtomic() Variant { return Atomic{baseVariant{key: "atomic"}} }

func (v Atomic) FinalizeBoard(board Board, m Move, captured Piece, didCapture bool) Board {
	if !didCapture {
		return board
	}
	_, board, _ = board.Take(m.To) // the capturing piece explodes too, even a pawn
	blast := kingAttacks(m.To).With(m.To)
	return board.RemoveNonPawns(blast)
}

func (v Atomic) ValidMoves(p Position) []Move {
	candidates := generateLegalMoves(p)
	color := p.ActiveColor
	out := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if p.Board.KingSquare(color) != NoSquare {
			np := p.Apply(m)
			if np.Board.KingSquare(color) == NoSquare {
				continue // illegal: explodes the mover's own king
			}
		}
		out = append(out, m)
	}
	return out
}

func (v Atomic) SpecialEnd(p Position) (bool, Color, bool) {
	whiteKing := p.Board.KingSquare(White) != NoSquare
	blackKing := p.Board.KingSquare(Black) != NoSquare
	switch {
	case !whiteKing && !blackKing:
		return true, White, false
	case !whiteKing:
		return true, Black, true
	case !blackKing:
		return true, White, true
	}
	return false, White, false
}
