// Package cli renders a Position as a colored unicode board, mainly for
// manual inspection while testing the move generator and replay engine.
// Grounded in the teacher's cli/cli.go (FormatBitboard/FormatPosition),
// generalized from the teacher's flat [12]uint64 bitboard array to
// caissa.Board, and colorized with github.com/fatih/color per the ambient
// CLI tooling the rest of the example pack reaches for.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/caissalib/caissa"
)

var pieceSymbols = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiBlack, color.Bold)
)

// FormatBoard renders board as an 8x8 unicode grid, rank 8 first.
func FormatBoard(board caissa.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := caissa.FileA; file <= caissa.FileH; file++ {
			sq := caissa.SquareAt(file, caissa.Rank(rank))
			piece, ok := board.PieceAt(sq)
			if !ok {
				sb.WriteString(".  ")
				continue
			}
			symbol := string(pieceSymbols[piece.Color][piece.Role])
			if piece.Color == caissa.White {
				sb.WriteString(whitePiece.Sprint(symbol))
			} else {
				sb.WriteString(blackPiece.Sprint(symbol))
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// FormatPosition renders p's board plus side to move, en-passant target, and
// castling rights.
func FormatPosition(p caissa.Position) string {
	var sb strings.Builder
	sb.WriteString(FormatBoard(p.Board))

	sb.WriteString("Active color: ")
	sb.WriteString(p.ActiveColor.String())

	sb.WriteString("\nEn passant: ")
	if p.History.EPSquare == caissa.NoSquare {
		sb.WriteString("none")
	} else {
		sb.WriteString(p.History.EPSquare.String())
	}

	sb.WriteString("\nFEN: ")
	sb.WriteString(caissa.SerializeFEN(p))
	sb.WriteByte('\n')
	return sb.String()
}
