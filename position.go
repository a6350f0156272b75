// position.go defines Position: a Board plus side-to-move, castling rights,
// en-passant target, move clocks, and variant/pocket state. Grounded in the
// teacher's position.go (flat Bitboards/ActiveColor/CastlingRights/EPTarget/
// HalfmoveCnt/FullmoveCnt fields), split into an immutable value type plus a
// History record, per spec.md §3 ("History: last move, halfMoveClock,
// fullMoveNumber, castling rights, prior position hashes, last en-passant
// target square").

package caissa

// Pockets holds Crazyhouse captured-piece hands, one per color, indexed by
// promotable role plus Pawn.
type Pockets [2][5]int // [Color][Pawn,Knight,Bishop,Rook,Queen]

func pocketIndex(r Role) int {
	if r == King {
		panic("caissa: king cannot be pocketed")
	}
	if r == Pawn {
		return 0
	}
	return int(r)
}

// Count returns how many of role c owns in their pocket.
func (p Pockets) Count(c Color, r Role) int { return p[c][pocketIndex(r)] }

func (p Pockets) add(c Color, r Role, n int) Pockets {
	p[c][pocketIndex(r)] += n
	return p
}

// History carries the parts of a Position that accumulate across moves but
// are not part of the board placement itself.
type History struct {
	LastMove       Move
	HasLastMove    bool
	HalfmoveClock  int
	FullmoveNumber int
	Castling       UnmovedRooks
	EPSquare       Square // NoSquare if none
	// Hashes records the Zobrist hash of every position reached so far
	// (including the current one), oldest first, for repetition detection.
	Hashes []uint64
	// Checks counts checks delivered to each color, for ThreeCheck.
	Checks [2]int
}

// Position is the immutable snapshot the move generator, SAN resolver, and
// replay engine all operate on.
type Position struct {
	Board       Board
	ActiveColor Color
	History     History
	Variant     Variant
	Pockets     Pockets
	// Promoted marks squares holding a piece that reached its role via
	// promotion, so Crazyhouse can revert it to a pawn when captured.
	Promoted Bitboard
}

// InitialPositionFEN is the standard chess starting position.
const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGame returns the starting Position for the given variant.
func NewGame(v Variant) Position {
	initAttackTables()
	initZobristKeys()
	p := v.InitialPosition()
	p.Variant = v
	p.History.Hashes = []uint64{zobristHash(p)}
	return p
}

// IsCheck reports whether the side to move is in check, as the active
// variant defines it (Antichess has no royal king and is never "in check").
func (p Position) IsCheck() bool {
	return p.Variant.InCheck(p)
}

// LegalMoves returns every legal move available to the side to move.
func (p Position) LegalMoves() []Move {
	return p.Variant.ValidMoves(p)
}

// LegalDrops returns every legal Crazyhouse-style drop available to the
// side to move (empty for variants that don't use pockets).
func (p Position) LegalDrops() []Drop {
	return p.Variant.LegalDrops(p)
}

// rooksOf returns the bitboard of c's rooks on the board. Nothing in the
// package calls it.
func (p Position) rooksOf(c Color) Bitboard {
	return p.Board.ByPiece(Piece{c, Rook})
}

// clone returns a deep-enough copy of p safe to mutate (History.Hashes is
// copied so appends don't alias the original slice's backing array).
func (p Position) clone() Position {
	np := p
	np.History.Hashes = append([]uint64(nil), p.History.Hashes...)
	return np
}
