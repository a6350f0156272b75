// variant_special.go implements the variants whose rules are Standard chess
// plus one additional win/draw condition or a reshuffled starting position:
// Chess960, King of the Hill, Three-Check, Racing Kings, and Horde. None of
// these exist in the teacher; each is built by embedding baseVariant and
// overriding exactly the methods spec.md §4.5 calls out as different.
package caissa

// Chess960 is Standard chess with a randomized back rank (Fischer Random).
type Chess960 struct {
	baseVariant
	seed int
}

// NewChess960 returns the Chess960 variant using starting position 518,
// which happens to be the ordinary RNBQKBNR arrangement.
func NewChess960() Variant { return NewChess960Seed(518) }

// NewChess960Seed returns the Chess960 variant for starting position seed
// (0-959), per the Scharnagl numbering scheme.
func NewChess960Seed(seed int) Variant {
	return Chess960{baseVariant{key: "chess960"}, seed}
}

func (v Chess960) InitialPosition() Position {
	backRank := scharnaglBackRank(v.seed)
	board := NewEmptyBoard()
	var rooks Bitboard
	for _, color := range [2]Color{White, Black} {
		rank := color.BackRank()
		pawnRank := color.SecondRank()
		for f := FileA; f <= FileH; f++ {
			sq := SquareAt(f, rank)
			board, _ = board.Place(Piece{color, backRank[f]}, sq)
			board, _ = board.Place(Piece{color, Pawn}, SquareAt(f, pawnRank))
			if backRank[f] == Rook {
				rooks = rooks.With(sq)
			}
		}
	}
	return Position{
		Board:       board,
		ActiveColor: White,
		History: History{
			FullmoveNumber: 1,
			Castling:       UnmovedRooks(rooks),
			EPSquare:       NoSquare,
		},
	}
}

// scharnaglBackRank computes the Fischer Random back-rank arrangement for
// starting position n (0-959), following the standard Scharnagl numbering.
func scharnaglBackRank(n int) [8]Role {
	var rank [8]Role
	occupied := [8]bool{}

	place := func(file int, r Role) {
		rank[file] = r
		occupied[file] = true
	}
	nthEmpty := func(k int) int {
		count := 0
		for f := 0; f < 8; f++ {
			if !occupied[f] {
				if count == k {
					return f
				}
				count++
			}
		}
		return -1
	}

	n, r := n/4, n%4
	place(2*r+1, Bishop) // light-square bishop: files b,d,f,h
	n, r = n/4, n%4
	place(2*r, Bishop) // dark-square bishop: files a,c,e,g
	n, r = n/6, n%6
	place(nthEmpty(r), Queen)

	knightPairs := [10][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	pair := knightPairs[n%10]
	var emptyFiles []int
	for f := 0; f < 8; f++ {
		if !occupied[f] {
			emptyFiles = append(emptyFiles, f)
		}
	}
	place(emptyFiles[pair[0]], Knight)
	place(emptyFiles[pair[1]], Knight)

	var remaining []int
	for f := 0; f < 8; f++ {
		if !occupied[f] {
			remaining = append(remaining, f)
		}
	}
	place(remaining[0], Rook)
	place(remaining[1], King)
	place(remaining[2], Rook)
	return rank
}

// KingOfTheHill ends the game the instant either king reaches the center.
type KingOfTheHill struct{ baseVariant }

func NewKingOfTheHill() Variant { return KingOfTheHill{baseVariant{key: "kingofthehill"}} }

func (v KingOfTheHill) SpecialEnd(p Position) (bool, Color, bool) {
	center := D4.Bitboard() | D5.Bitboard() | E4.Bitboard() | E5.Bitboard()
	for _, c := range [2]Color{White, Black} {
		if p.Board.ByPiece(Piece{c, King})&center != 0 {
			return true, c, true
		}
	}
	return false, White, false
}

// ThreeCheck ends the game the instant either side has delivered three checks.
type ThreeCheck struct{ baseVariant }

func NewThreeCheck() Variant { return ThreeCheck{baseVariant{key: "3check"}} }

func (v ThreeCheck) SpecialEnd(p Position) (bool, Color, bool) {
	for _, c := range [2]Color{White, Black} {
		if p.History.Checks[c] >= 3 {
			return true, c, true
		}
	}
	return false, White, false
}

// RacingKings replaces check-based mating with a race: the first king to
// reach the 8th rank wins, and giving check is illegal at any point.
type RacingKings struct{ baseVariant }

func NewRacingKings() Variant { return RacingKings{baseVariant{key: "racingkings"}} }

func (v RacingKings) InitialPosition() Position {
	board := NewEmptyBoard()
	// The canonical Racing Kings start: both armies packed onto ranks 1-2,
	// mirrored left-right around the d/e files rather than split by color,
	// so neither king starts adjacent to the other (no pawns; the file order
	// below is the one used by every Racing Kings implementation: the back
	// four files hold one color's queen/rook/bishop/knight, the front four
	// hold the other's knight/bishop/rook/queen).
	rank1 := [8]Piece{
		{Black, Queen}, {Black, Rook}, {Black, Bishop}, {Black, Knight},
		{White, Knight}, {White, Bishop}, {White, Rook}, {White, Queen},
	}
	rank2 := [8]Piece{
		{Black, King}, {Black, Rook}, {Black, Bishop}, {Black, Knight},
		{White, Knight}, {White, Bishop}, {White, Rook}, {White, King},
	}
	for f := FileA; f <= FileH; f++ {
		board, _ = board.Place(rank1[f], SquareAt(f, Rank1))
		board, _ = board.Place(rank2[f], SquareAt(f, Rank2))
	}
	return Position{
		Board:       board,
		ActiveColor: White,
		History:     History{FullmoveNumber: 1, EPSquare: NoSquare},
	}
}

func (v RacingKings) ValidMoves(p Position) []Move {
	candidates := generateLegalMoves(p)
	out := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		np := p.Apply(m)
		if !np.Board.CheckOf(np.ActiveColor) {
			out = append(out, m)
		}
	}
	return out
}

func (v RacingKings) InCheck(Position) bool { return false }

func (v RacingKings) Checkmate(Position) bool { return false }

func (v RacingKings) SpecialEnd(p Position) (bool, Color, bool) {
	const rank8 = Bitboard(0xFF) << (8 * 7)
	whiteHome := p.Board.ByPiece(Piece{White, King})&rank8 != 0
	blackHome := p.Board.ByPiece(Piece{Black, King})&rank8 != 0
	switch {
	case whiteHome && blackHome:
		return true, White, false // both reached: draw, no single winner
	case whiteHome:
		return true, White, true
	case blackHome:
		return true, Black, true
	}
	return false, White, false
}

// Horde pits a pawn horde (White, no king) against a normal army (Black).
type Horde struct{ baseVariant }

func NewHorde() Variant { return Horde{baseVariant{key: "horde"}} }

func (v Horde) Royal(c Color) bool { return c == Black }

func (v Horde) InitialPosition() Position {
	board := NewEmptyBoard()
	backRank := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		board, _ = board.Place(Piece{Black, backRank[f]}, SquareAt(f, Rank8))
		board, _ = board.Place(Piece{Black, Pawn}, SquareAt(f, Rank7))
	}
	for r := Rank1; r <= Rank4; r++ {
		for f := FileA; f <= FileH; f++ {
			board, _ = board.Place(Piece{White, Pawn}, SquareAt(f, r))
		}
	}
	for _, f := range [4]File{FileB, FileC, FileF, FileG} {
		board, _ = board.Place(Piece{White, Pawn}, SquareAt(f, Rank5))
	}
	return Position{
		Board:       board,
		ActiveColor: White,
		History: History{
			FullmoveNumber: 1,
			Castling:       UnmovedRooks(A8.Bitboard() | H8.Bitboard()),
			EPSquare:       NoSquare,
		},
	}
}

func (v Horde) InCheck(p Position) bool {
	if p.ActiveColor == White {
		return false
	}
	return p.Board.CheckOf(Black)
}

func (v Horde) Checkmate(p Position) bool {
	return v.InCheck(p) && len(p.Variant.ValidMoves(p)) == 0
}

func (v Horde) SpecialEnd(p Position) (bool, Color, bool) {
	if p.Board.ByColor(White) == 0 {
		return true, Black, true
	}
	return false, White, false
}

func (v Horde) ValidBoard(board Board, strict bool) bool {
	if board.ByRole(Pawn)&rank8BB != 0 {
		return false
	}
	return true
}
