// movegen_test.go covers the perft identities from spec.md §8 and the six
// named scenario tests, using testify per the ambient stack's test tooling.
package caissa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLegal(p Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		nodes += countLegal(p.Apply(m), depth-1)
	}
	return nodes
}

func TestPerftStandard(t *testing.T) {
	want := []int{1, 20, 400, 8902, 197281}
	for depth, expected := range want {
		p := NewGame(NewStandard())
		got := countLegal(p, depth)
		assert.Equalf(t, expected, got, "perft depth %d", depth)
	}
}

func TestFoolsMate(t *testing.T) {
	p := NewGame(NewStandard())
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseUCI(p, uci)
		require.NoError(t, err)
		p = p.Apply(m)
	}
	assert.True(t, p.IsCheck())
	assert.Empty(t, p.LegalMoves())
	assert.Equal(t, BlackWins, Status(p))
}

func TestEnPassantLegality(t *testing.T) {
	// White has just played e2-e4 past the black pawn on d4. With the black
	// king on c5 and only the white king and rook on the first rank, taking
	// en passant exposes nothing, so dxe3 must be generated.
	p, err := ParseFEN("8/8/8/2k5/3pP3/8/8/4K2R b - e3 0 1", NewStandard())
	require.NoError(t, err)
	found := false
	for _, m := range p.LegalMoves() {
		if m.Kind == EnPassant {
			found = true
		}
	}
	assert.True(t, found, "expected the en-passant capture to be legal")
}

func TestChess960Castling(t *testing.T) {
	v := NewChess960Seed(518) // standard back rank, exercised through the 960 code path
	p := NewGame(v)
	var castles int
	for _, m := range p.LegalMoves() {
		if m.Kind == Castle {
			castles++
		}
	}
	assert.Equal(t, 0, castles, "no castling available from the opening position")
}

func TestAtomicExplosionRemovesAdjacentPieces(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", NewAtomic())
	require.NoError(t, err)
	var capture Move
	var found bool
	for _, m := range p.LegalMoves() {
		if m.IsCapture {
			capture, found = m, true
			break
		}
	}
	require.True(t, found, "expected exd5 to be a legal capture")
	after := p.Apply(capture)
	assert.False(t, after.Board.Occupied().Has(capture.To), "the capture square explodes clean of pieces")
}

func TestAntichessMandatoryCapture(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/5P2/8/PPPPP1PP/RNBQKBNR b - - 0 1", NewAntichess())
	require.NoError(t, err)
	moves := p.LegalMoves()
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.True(t, m.IsCapture, "antichess must only offer captures when one exists")
	}
}

func TestCrazyhouseDropBlocksCheck(t *testing.T) {
	// The white king on e1 is checked by the rook on e3 with e2 empty between
	// them: the only legal drop of the pocketed bishop is the block on e2.
	p, err := ParseFEN("4k3/8/8/8/8/4r3/8/4K3 w - - 0 1", NewCrazyhouse())
	require.NoError(t, err)
	p.Pockets = p.Pockets.add(White, Bishop, 1)
	drops := p.LegalDrops()
	require.Len(t, drops, 1)
	assert.Equal(t, E2, drops[0].To)
}
