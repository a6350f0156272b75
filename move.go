// move.go defines the tagged Move and Drop records spec.md §3 calls for, and
// the Apply operation that produces the next Position. Grounded in the
// teacher's position.go MakeMove (piece placement / castling-rights / en-
// passant / clock bookkeeping), generalized from a packed uint16 encoding
// into a tagged struct per spec.md §9 ("model as a tagged union... avoid
// interface-style extension") and extended with variant hooks (checks
// counter, pockets, king-capture goals).

package caissa

// MoveKind distinguishes the shape of a Move.
type MoveKind int

const (
	Normal MoveKind = iota
	PromotionMove
	EnPassant
	Castle
)

// Move is a single tagged chess move. Fields outside the ones relevant to
// Kind are zero. Before/After are populated by Position.Apply.
type Move struct {
	Kind MoveKind
	From Square
	To   Square
	Role Role // role of the piece making the move

	IsCapture bool
	Captured  Piece // valid iff IsCapture

	Promotion Role // valid iff Kind == PromotionMove

	CastleSide       CastlingSide // valid iff Kind == Castle
	RookFrom, RookTo Square       // valid iff Kind == Castle

	Before *Position
	After  *Position
}

// Drop is a Crazyhouse-style placement of a pocketed piece onto an empty
// square.
type Drop struct {
	Role Role
	To   Square

	Before *Position
	After  *Position
}

// UCI renders the move as a 4-5 character UCI string: from, to, optional
// lowercase promotion letter. Chess960 castling is encoded king-to-rook;
// standard castling is king-to-final-square, matching spec.md §6.
func (m Move) UCI(chess960 bool) string {
	to := m.To
	if m.Kind == Castle && chess960 {
		to = m.RookFrom
	}
	s := m.From.String() + to.String()
	if m.Kind == PromotionMove {
		s += string(roleLetterLower(m.Promotion))
	}
	return s
}

func roleLetterLower(r Role) byte {
	return roleLetters[r] + ('a' - 'A')
}

// Apply plays m against p, returning the resulting Position. It is the
// caller's responsibility to ensure m was produced by p.LegalMoves() (or an
// equivalent legality check) — Apply does not re-validate legality, only
// bookkeeping.
func (p Position) Apply(m Move) Position {
	np := p.clone()
	color := p.ActiveColor
	board := p.Board

	var capturedPiece Piece
	captured := false
	promoted := p.Promoted

	switch m.Kind {
	case Normal:
		nb, cap, _ := board.Move(m.From, m.To)
		board = nb
		if cap != nil {
			captured, capturedPiece = true, *cap
			promoted = promoted.Without(m.To)
		}
		if promoted.Has(m.From) {
			promoted = promoted.Without(m.From).With(m.To)
		}
	case PromotionMove:
		nb, cap, _ := board.Promote(m.From, m.To, m.Promotion)
		board = nb
		if cap != nil {
			captured, capturedPiece = true, *cap
		}
		promoted = promoted.Without(m.From).With(m.To)
	case EnPassant:
		nb, _, _ := board.Move(m.From, m.To)
		board = nb
		capSquare := m.To - Square(color.PawnDirection())
		capturedPiece, board, _ = board.Take(capSquare)
		captured = true
	case Castle:
		kb, _, _ := board.Move(m.From, m.To)
		rb, _, _ := kb.Move(m.RookFrom, m.RookTo)
		board = rb
	}

	board = p.Variant.FinalizeBoard(board, m, capturedPiece, captured)
	np.Board = board
	np.Promoted = promoted

	// Castling rights: king move drops both rights for that color; rook
	// move from an unmoved-rook square drops that one right; any capture
	// landing on an unmoved-rook square drops that right too (the rook is
	// gone regardless of who captured it).
	rights := p.History.Castling
	if m.Role == King {
		rights = rights.RemoveMask(RankBB(color.BackRank()))
	}
	if m.Role == Rook {
		rights = rights.Remove(m.From)
	}
	if captured {
		rights = rights.Remove(m.To)
	}
	np.History.Castling = rights

	// En-passant target: only a two-square pawn push sets it.
	np.History.EPSquare = NoSquare
	if m.Role == Pawn {
		diff := int(m.To) - int(m.From)
		if diff == 16 || diff == -16 {
			np.History.EPSquare = m.From + Square(color.PawnDirection())
		}
	}

	// Clocks.
	if captured || m.Role == Pawn {
		np.History.HalfmoveClock = 0
	} else {
		np.History.HalfmoveClock++
	}
	if color == Black {
		np.History.FullmoveNumber++
	}

	// Pockets (Crazyhouse): the captured piece joins the capturer's pocket,
	// reverting to a pawn if it was a promoted piece.
	if captured && p.Variant.UsesPockets() {
		role := capturedPiece.Role
		if p.Promoted.Has(m.To) {
			role = Pawn
		}
		np.Pockets = np.Pockets.add(color, role, 1)
	}

	np.ActiveColor = color.Other()
	if np.Board.CheckOf(np.ActiveColor) {
		np.History.Checks[color]++
	}

	np.History.HasLastMove = true
	np.History.Hashes = append(np.History.Hashes, zobristHash(np))

	before, after := p, np
	m.Before, m.After = &before, &after
	np.History.LastMove = m

	return np
}

// ApplyDrop plays a Crazyhouse drop against p.
func (p Position) ApplyDrop(d Drop) (Position, error) {
	return p.Variant.ApplyDrop(p, d)
}
