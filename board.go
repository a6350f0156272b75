// board.go implements the Board value type: six role bitboards plus two
// color bitboards, with total place/take/move/promote operations. Grounded
// in the teacher's position.go (placePiece/removePiece/GetPieceFromSquare),
// generalized into an Option-returning API independent of move application,
// per spec.md §4.2.

package caissa

// Board is an immutable chessboard: the placement of pieces, nothing else.
// Side to move, castling rights, and en-passant live on Position.
type Board struct {
	roles  [6]Bitboard // indexed by Role
	colors [2]Bitboard // indexed by Color
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() Board { return Board{} }

// Occupied returns the union of all pieces on the board.
func (b Board) Occupied() Bitboard { return b.colors[White] | b.colors[Black] }

// ByRole returns the bitboard of all pieces of the given role, both colors.
func (b Board) ByRole(r Role) Bitboard { return b.roles[r] }

// ByColor returns the bitboard of all pieces belonging to c.
func (b Board) ByColor(c Color) Bitboard { return b.colors[c] }

// ByPiece returns the bitboard of pieces matching both color and role.
func (b Board) ByPiece(p Piece) Bitboard { return b.roles[p.Role] & b.colors[p.Color] }

// PieceAt returns the piece occupying s, if any.
func (b Board) PieceAt(s Square) (Piece, bool) {
	if !b.Occupied().Has(s) {
		return Piece{}, false
	}
	color := White
	if b.colors[Black].Has(s) {
		color = Black
	}
	for r := Pawn; r <= King; r++ {
		if b.roles[r].Has(s) {
			return Piece{color, r}, true
		}
	}
	return Piece{}, false
}

// Place returns a board with p placed at s, and true, iff s was empty.
func (b Board) Place(p Piece, s Square) (Board, bool) {
	if b.Occupied().Has(s) {
		return b, false
	}
	b.roles[p.Role] = b.roles[p.Role].With(s)
	b.colors[p.Color] = b.colors[p.Color].With(s)
	return b, true
}

// Take removes and returns the piece at s, iff s is occupied.
func (b Board) Take(s Square) (Piece, Board, bool) {
	p, ok := b.PieceAt(s)
	if !ok {
		return Piece{}, b, false
	}
	b.roles[p.Role] = b.roles[p.Role].Without(s)
	b.colors[p.Color] = b.colors[p.Color].Without(s)
	return p, b, true
}

// Move relocates the piece on from to to, iff from is occupied and to is
// either empty or held by the opponent (which is captured in the process).
// It returns the resulting board and the captured piece, if any.
func (b Board) Move(from, to Square) (Board, *Piece, bool) {
	mover, ok := b.PieceAt(from)
	if !ok {
		return b, nil, false
	}
	var captured *Piece
	if occ, ok := b.PieceAt(to); ok {
		if occ.Color == mover.Color {
			return b, nil, false
		}
		cp := occ
		captured = &cp
		_, b, _ = b.Take(to)
	}
	_, b, _ = b.Take(from)
	b, _ = b.Place(mover, to)
	return b, captured, true
}

// Promote behaves like Move but replaces the moved piece's role with
// promoted at the destination.
func (b Board) Promote(from, to Square, promoted Role) (Board, *Piece, bool) {
	mover, ok := b.PieceAt(from)
	if !ok {
		return b, nil, false
	}
	b, captured, ok := b.Move(from, to)
	if !ok {
		return b, nil, false
	}
	_, b, _ = b.Take(to)
	b, _ = b.Place(Piece{mover.Color, promoted}, to)
	return b, captured, true
}

// attackers returns the bitboard of byColor's pieces attacking sq under the
// given occupancy (which the caller may have modified to probe hypothetical
// removals, e.g. for discovered-check / king-safety tests).
func (b Board) attackers(sq Square, byColor Color, occupancy Bitboard) Bitboard {
	var att Bitboard
	att |= pawnAttacks(byColor.Other(), sq) & b.roles[Pawn] & b.colors[byColor]
	att |= knightAttacks(sq) & b.roles[Knight] & b.colors[byColor]
	att |= kingAttacks(sq) & b.roles[King] & b.colors[byColor]
	att |= bishopAttacks(sq, occupancy) & (b.roles[Bishop] | b.roles[Queen]) & b.colors[byColor]
	att |= rookAttacks(sq, occupancy) & (b.roles[Rook] | b.roles[Queen]) & b.colors[byColor]
	return att
}

// Attackers is the public form of attackers, using the board's own occupancy.
func (b Board) Attackers(sq Square, byColor Color) Bitboard {
	return b.attackers(sq, byColor, b.Occupied())
}

// CheckOf reports whether c's king is currently attacked.
func (b Board) CheckOf(c Color) bool {
	king := (b.roles[King] & b.colors[c]).First()
	if king == NoSquare {
		return false
	}
	return b.attackers(king, c.Other(), b.Occupied()) != 0
}

// KingSquare returns the square of c's king, or NoSquare if it has none
// (Antichess, Horde: the color without a royal king).
func (b Board) KingSquare(c Color) Square {
	return (b.roles[King] & b.colors[c]).First()
}

// Valid checks the board invariants from spec.md §3. When strict is false,
// the "exactly one king per color" and "no pawns on ranks 1 or 8" rules are
// both relaxed (non-Standard variants).
func (b Board) Valid(strict bool) bool {
	var seen Bitboard
	for r := Pawn; r <= King; r++ {
		if b.roles[r]&seen != 0 {
			return false // role bitboards must be pairwise disjoint
		}
		seen |= b.roles[r]
	}
	if seen != b.Occupied() {
		return false
	}
	if strict {
		if (b.roles[King] & b.colors[White]).Count() != 1 {
			return false
		}
		if (b.roles[King] & b.colors[Black]).Count() != 1 {
			return false
		}
		if b.roles[Pawn]&(rank1BB|rank8BB) != 0 {
			return false
		}
	}
	return true
}

// RemoveNonPawns clears every piece except pawns on squares in mask,
// regardless of color. Used by Atomic to resolve capture explosions.
func (b Board) RemoveNonPawns(mask Bitboard) Board {
	for r := Knight; r <= King; r++ {
		b.roles[r] &^= mask
	}
	b.colors[White] &^= mask &^ b.roles[Pawn]
	b.colors[Black] &^= mask &^ b.roles[Pawn]
	return b
}

// UnmovedRooks is the subset of rook squares that still hold castling
// rights, per spec.md §3. Square-level granularity (rather than a 4-bit
// KQkq mask) is required to support Chess960, where rooks need not start on
// the A/H files.
type UnmovedRooks Bitboard

// CastlingSide identifies king-side or queen-side castling.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

// Remove clears castling rights for the rook on sq.
func (u UnmovedRooks) Remove(sq Square) UnmovedRooks {
	return u &^ UnmovedRooks(sq.Bitboard())
}

// RemoveMask clears every unmoved-rook right in mask (used when a king moves,
// to drop both of that color's castling rights at once).
func (u UnmovedRooks) RemoveMask(mask Bitboard) UnmovedRooks {
	return u &^ UnmovedRooks(mask)
}

// Side reports the castling side inferred for an unmoved rook at sq, by
// comparing it against the other unmoved rook on the same rank:
//   - present=false: sq is not an unmoved rook.
//   - present=true, determined=false: sq is an unmoved rook, but no sibling
//     unmoved rook remains on the same rank to compare it against.
//   - present=true, determined=true: side is inferred from file ordering
//     (the higher-file rook is king-side, the lower-file rook is queen-side).
func (u UnmovedRooks) Side(sq Square) (present bool, side CastlingSide, determined bool) {
	if Bitboard(u)&sq.Bitboard() == 0 {
		return false, 0, false
	}
	rank := RankBB(sq.Rank())
	siblings := Bitboard(u) & rank &^ sq.Bitboard()
	if siblings == 0 {
		return true, 0, false
	}
	other := siblings.First()
	if sq.File() > other.File() {
		return true, KingSide, true
	}
	return true, QueenSide, true
}
