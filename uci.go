// uci.go resolves UCI move strings against a Position's legal moves.
// Grounded in the teacher's uci.go (Move2UCI, a pure serializer); the parse
// direction is new, needed by spec.md §6's external UCI interface.
package caissa

// ParseUCI resolves a UCI move string (e.g. "e2e4", "e7e8q") against p's
// legal moves. Chess960 castling UCI (king-to-rook-square) is accepted as
// well as standard castling UCI (king-to-final-square).
func ParseUCI(p Position, uci string) (Move, error) {
	if len(uci) < 4 || len(uci) > 5 {
		return Move{}, &ParseError{Expected: "4-5 character UCI move"}
	}
	from, err := ParseSquare(uci[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(uci[2:4])
	if err != nil {
		return Move{}, err
	}
	var promo Role
	hasPromo := false
	if len(uci) == 5 {
		role, ok := ParseRole(uci[4] - ('a' - 'A'))
		if !ok {
			return Move{}, &ParseError{Expected: "promotion letter"}
		}
		promo, hasPromo = role, true
	}

	for _, m := range p.LegalMoves() {
		if m.From != from {
			continue
		}
		if m.Kind == Castle {
			// Accept either standard UCI (king to final square) or
			// Chess960-style UCI (king to rook's square).
			if to == m.To || to == m.RookFrom {
				return m, nil
			}
			continue
		}
		if m.To != to {
			continue
		}
		if hasPromo && (m.Kind != PromotionMove || m.Promotion != promo) {
			continue
		}
		if !hasPromo && m.Kind == PromotionMove {
			continue
		}
		return m, nil
	}
	return Move{}, ErrNoMoveFound
}
