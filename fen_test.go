package caissa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	p, err := ParseFEN(InitialPositionFEN, NewStandard())
	require.NoError(t, err)
	assert.Equal(t, InitialPositionFEN, SerializeFEN(p))
}

func TestFENRejectsBadPlacement(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", NewStandard())
	assert.Error(t, err)
}
