package caissa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSANDisambiguation(t *testing.T) {
	// Knights on b1 and f1 can both reach d2: disambiguation must pick the file.
	p, err := ParseFEN("4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", NewStandard())
	require.NoError(t, err)
	for _, m := range p.LegalMoves() {
		if m.Role == Knight && m.To == D2 {
			np := p.Apply(m)
			m.After = &np
			before := p
			m.Before = &before
			assert.Contains(t, SAN(m), m.From.File().String())
		}
	}
}

func TestResolveSANPawnPush(t *testing.T) {
	p := NewGame(NewStandard())
	resolved, err := ResolveSAN(p, "e4")
	require.NoError(t, err)
	require.False(t, resolved.IsDrop)
	assert.Equal(t, E2, resolved.Move.From)
	assert.Equal(t, E4, resolved.Move.To)
}

func TestResolveSANDrop(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/ppp2ppp/8/3pp3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 1", NewCrazyhouse())
	require.NoError(t, err)
	p.Pockets = p.Pockets.add(Black, Knight, 1)
	resolved, err := ResolveSAN(p, "N@d6")
	require.NoError(t, err)
	require.True(t, resolved.IsDrop)
	assert.Equal(t, Knight, resolved.Drop.Role)
	assert.Equal(t, D6, resolved.Drop.To)
}

func TestResolveSANWrongPromotion(t *testing.T) {
	p, err := ParseFEN("8/4k3/8/8/8/8/4K2P/8 w - - 0 1", NewStandard())
	require.NoError(t, err)
	_, err = ResolveSAN(p, "h8")
	assert.ErrorIs(t, err, ErrWrongPromotion)
}
