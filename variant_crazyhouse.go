// variant_crazyhouse.go implements Crazyhouse: captured pieces join the
// capturer's pocket (already tracked by Position.Apply/Pockets) and may be
// dropped back onto any empty square on a later turn. Entirely new relative
// to the teacher, grounded in spec.md §4.5's drop rules and §3's Pockets
// model.
package caissa

// Crazyhouse is Standard chess plus a drop move: a pocketed piece may be
// placed on any empty square instead of moving a piece already on the board.
type Crazyhouse struct{ baseVariant }

func NewCrazyhouse() Variant { return Crazyhouse{baseVariant{key: "crazyhouse"}} }

func (v Crazyhouse) UsesPockets() bool { return true }

// LegalDrops returns every legal drop for the side to move: an empty square,
// a pawn never landing on the back ranks, and the position not left with the
// mover's own king in check.
func (v Crazyhouse) LegalDrops(p Position) []Drop {
	color := p.ActiveColor
	empty := ^p.Board.Occupied()
	var out []Drop
	for r := Pawn; r <= Queen; r++ {
		if p.Pockets.Count(color, r) == 0 {
			continue
		}
		squares := empty
		if r == Pawn {
			squares &^= rank1BB | rank8BB
		}
		for squares != 0 {
			sq := squares.PopFirst()
			d := Drop{Role: r, To: sq}
			np, err := v.ApplyDrop(p, d)
			if err != nil {
				continue
			}
			if np.Board.CheckOf(color) {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}

// ApplyDrop places d.Role from the mover's pocket onto d.To.
func (v Crazyhouse) ApplyDrop(p Position, d Drop) (Position, error) {
	color := p.ActiveColor
	if d.Role == King {
		return p, &IllegalDropError{Reason: "cannot drop a king"}
	}
	if p.Pockets.Count(color, d.Role) == 0 {
		return p, &IllegalDropError{Reason: "empty pocket for role " + d.Role.String()}
	}
	if p.Board.Occupied().Has(d.To) {
		return p, &IllegalDropError{Reason: "square " + d.To.String() + " is occupied"}
	}
	if d.Role == Pawn && (d.To.Bitboard()&(rank1BB|rank8BB) != 0) {
		return p, &IllegalDropError{Reason: "pawns cannot be dropped on the back rank"}
	}

	np := p.clone()
	board, ok := p.Board.Place(Piece{color, d.Role}, d.To)
	if !ok {
		return p, &IllegalDropError{Reason: "square " + d.To.String() + " is occupied"}
	}
	np.Board = board
	np.Pockets = np.Pockets.add(color, d.Role, -1)
	np.History.EPSquare = NoSquare
	np.History.HalfmoveClock++
	if color == Black {
		np.History.FullmoveNumber++
	}
	np.ActiveColor = color.Other()
	if np.Board.CheckOf(np.ActiveColor) {
		np.History.Checks[color]++
	}
	np.History.HasLastMove = false
	np.History.Hashes = append(np.History.Hashes, zobristHash(np))

	before, after := p, np
	d.Before, d.After = &before, &after

	return np, nil
}
