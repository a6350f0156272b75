// fen.go implements FEN parsing and serialization. Grounded in the
// teacher's fen.go (ParseFEN/SerializeFEN/ParseBitboards/SerializeBitboards/
// string2Square), generalized from the teacher's flat Bitboards array and
// 4-bit KQkq mask to Board/UnmovedRooks. The variant is passed in by the
// caller rather than read from the FEN, and Crazyhouse pockets are neither
// read from nor written to it.
package caissa

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Position for the given variant. The
// variant determines board-validity rules (e.g. Horde allows White pawns on
// rank 1) but not the FEN grammar itself.
func ParseFEN(fen string, v Variant) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, &InvalidFenError{Field: "fen", Detail: "expected at least 4 fields"}
	}

	board, err := parseFenBoard(fields[0])
	if err != nil {
		return Position{}, err
	}

	var active Color
	switch fields[1] {
	case "w":
		active = White
	case "b":
		active = Black
	default:
		return Position{}, &InvalidFenError{Field: "active color", Detail: fields[1]}
	}

	castling, err := parseFenCastling(fields[2], board)
	if err != nil {
		return Position{}, err
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return Position{}, &InvalidFenError{Field: "en passant", Detail: fields[3]}
	}

	halfmove, fullmove := 0, 1
	if len(fields) >= 6 {
		halfmove, _ = strconv.Atoi(fields[4])
		fullmove, _ = strconv.Atoi(fields[5])
	}

	p := Position{
		Board:       board,
		ActiveColor: active,
		Variant:     v,
		History: History{
			HalfmoveClock:  halfmove,
			FullmoveNumber: fullmove,
			Castling:       castling,
			EPSquare:       ep,
		},
	}
	initAttackTables()
	initZobristKeys()
	p.History.Hashes = []uint64{zobristHash(p)}
	if v != nil && !v.ValidBoard(board, true) {
		return Position{}, &InvalidFenError{Field: "board", Detail: "fails variant placement rules"}
	}
	return p, nil
}

func parseFenBoard(field string) (Board, error) {
	board := NewEmptyBoard()
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return board, &InvalidFenError{Field: "piece placement", Detail: "expected 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += File(c - '0')
			default:
				piece, ok := PieceFromSymbol(byte(c))
				if !ok {
					return board, &InvalidFenError{Field: "piece placement", Detail: fmt.Sprintf("bad symbol %q", c)}
				}
				if file > FileH {
					return board, &InvalidFenError{Field: "piece placement", Detail: "rank overflow"}
				}
				board, ok = board.Place(piece, SquareAt(file, rank))
				if !ok {
					return board, &InvalidFenError{Field: "piece placement", Detail: "duplicate square"}
				}
				file++
			}
		}
	}
	return board, nil
}

func parseFenCastling(field string, board Board) (UnmovedRooks, error) {
	if field == "-" {
		return 0, nil
	}
	var rights Bitboard
	for _, c := range field {
		var color Color
		letter := byte(c)
		if letter >= 'a' && letter <= 'z' {
			color = Black
			letter -= 'a' - 'A'
		} else {
			color = White
		}
		rank := color.BackRank()
		rookBB := board.ByPiece(Piece{color, Rook}) & RankBB(rank)
		switch letter {
		case 'K':
			if sq := highestFile(rookBB); sq != NoSquare {
				rights = rights.With(sq)
			}
		case 'Q':
			if sq := lowestFile(rookBB); sq != NoSquare {
				rights = rights.With(sq)
			}
		default:
			// Chess960-style file letter (A-H): the rook on that exact file.
			file := File(letter - 'A')
			if file < FileA || file > FileH {
				return 0, &InvalidFenError{Field: "castling", Detail: string(c)}
			}
			sq := SquareAt(file, rank)
			if rookBB.Has(sq) {
				rights = rights.With(sq)
			}
		}
	}
	return UnmovedRooks(rights), nil
}

func highestFile(bb Bitboard) Square {
	best := NoSquare
	for bb != 0 {
		sq := bb.PopFirst()
		if best == NoSquare || sq.File() > best.File() {
			best = sq
		}
	}
	return best
}

func lowestFile(bb Bitboard) Square {
	best := NoSquare
	for bb != 0 {
		sq := bb.PopFirst()
		if best == NoSquare || sq.File() < best.File() {
			best = sq
		}
	}
	return best
}

// SerializeFEN renders p back into FEN form.
func SerializeFEN(p Position) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareAt(f, Rank(r))
			piece, ok := p.Board.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.ActiveColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(serializeFenCastling(p))

	sb.WriteByte(' ')
	sb.WriteString(p.History.EPSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.History.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.History.FullmoveNumber))

	return sb.String()
}

func serializeFenCastling(p Position) string {
	rights := Bitboard(p.History.Castling)
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, color := range [2]Color{White, Black} {
		rank := RankBB(color.BackRank())
		// Highest file first, so the king-side right precedes the queen-side one.
		colorRights := (rights & rank).Squares()
		for i := len(colorRights) - 1; i >= 0; i-- {
			sq := colorRights[i]
			_, side, determined := p.History.Castling.Side(sq)
			letter := byte('K')
			if determined && side == QueenSide {
				letter = 'Q'
			} else if !determined {
				letter = byte('A' + sq.File())
			}
			if color == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	return sb.String()
}
