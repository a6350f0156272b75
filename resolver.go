// resolver.go parses a single SAN token and resolves it against a
// Position's legal moves. The teacher has no SAN parser (only Move2SAN, a
// serializer) so this grammar is new, shaped by spec.md §4.6: parse the
// token's role/disambiguation/destination/promotion, then pick the unique
// legal move matching it.
package caissa

import "strings"

// sanToken is a parsed, unresolved SAN move token.
type sanToken struct {
	castleKingSide  bool
	castleQueenSide bool
	isDrop          bool
	role            Role
	fromFile        File
	hasFromFile     bool
	fromRank        Rank
	hasFromRank     bool
	to              Square
	promotion       Role
	isPromotion     bool
}

// parseSANToken parses the core of a SAN move, first stripping any trailing
// "+"/"#" and "!"/"?" annotations.
func parseSANToken(tok string) (sanToken, error) {
	tok = strings.TrimRight(tok, "+#!?")
	if tok == "O-O" || tok == "0-0" {
		return sanToken{castleKingSide: true}, nil
	}
	if tok == "O-O-O" || tok == "0-0-0" {
		return sanToken{castleQueenSide: true}, nil
	}
	if tok == "" {
		return sanToken{}, &ParseError{Expected: "a move"}
	}

	if at := strings.IndexByte(tok, '@'); at >= 0 {
		role := Pawn
		if at > 0 {
			r, ok := ParseRole(tok[0])
			if !ok {
				return sanToken{}, &ParseError{Expected: "drop role letter"}
			}
			role = r
		}
		sq, err := ParseSquare(tok[at+1:])
		if err != nil || sq == NoSquare {
			return sanToken{}, &ParseError{Expected: "valid drop square"}
		}
		return sanToken{isDrop: true, role: role, to: sq}, nil
	}

	t := sanToken{role: Pawn}
	rest := tok
	if role, ok := ParseRole(rest[0]); ok {
		t.role = role
		rest = rest[1:]
	}

	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		promo := rest[eq+1:]
		if len(promo) == 0 {
			return sanToken{}, &ParseError{Expected: "promotion role after '='"}
		}
		role, ok := ParseRole(promo[0])
		if !ok {
			return sanToken{}, &ParseError{Expected: "promotion role letter"}
		}
		t.isPromotion = true
		t.promotion = role
		rest = rest[:eq]
	}

	rest = strings.ReplaceAll(rest, "x", "")
	if len(rest) < 2 {
		return sanToken{}, &ParseError{Expected: "destination square"}
	}

	dest := rest[len(rest)-2:]
	sq, err := ParseSquare(dest)
	if err != nil || sq == NoSquare {
		return sanToken{}, &ParseError{Expected: "valid destination square"}
	}
	t.to = sq

	disambig := rest[:len(rest)-2]
	for _, c := range disambig {
		switch {
		case c >= 'a' && c <= 'h':
			t.fromFile, t.hasFromFile = File(c-'a'), true
		case c >= '1' && c <= '8':
			t.fromRank, t.hasFromRank = Rank(c-'1'), true
		default:
			return sanToken{}, &ParseError{Expected: "file or rank disambiguator"}
		}
	}
	return t, nil
}

// ResolvedMove is the outcome of resolving a single SAN token: exactly one
// of Move or Drop applies, per spec.md §9's SAN sum type (Piece/Castle moves
// vs. Drop). IsDrop reports which.
type ResolvedMove struct {
	Move   Move
	Drop   Drop
	IsDrop bool
}

// ResolveSAN parses tok and finds the unique legal move or drop of p it
// names.
func ResolveSAN(p Position, tok string) (ResolvedMove, error) {
	parsed, err := parseSANToken(tok)
	if err != nil {
		return ResolvedMove{}, err
	}

	if parsed.isDrop {
		for _, d := range p.Variant.LegalDrops(p) {
			if d.Role == parsed.role && d.To == parsed.to {
				return ResolvedMove{Drop: d, IsDrop: true}, nil
			}
		}
		return ResolvedMove{}, ErrNoMoveFound
	}

	legal := p.LegalMoves()
	if parsed.castleKingSide || parsed.castleQueenSide {
		want := KingSide
		if parsed.castleQueenSide {
			want = QueenSide
		}
		for _, m := range legal {
			if m.Kind == Castle && m.CastleSide == want {
				return ResolvedMove{Move: m}, nil
			}
		}
		return ResolvedMove{}, ErrNoMoveFound
	}

	if parsed.role == Pawn {
		onLastRank := parsed.to.Bitboard()&RankBB(p.ActiveColor.LastRank()) != 0
		if onLastRank != parsed.isPromotion {
			return ResolvedMove{}, &WrongPromotionError{Token: tok}
		}
	}

	var match *Move
	for i := range legal {
		m := legal[i]
		if m.To != parsed.to || m.Role != parsed.role {
			continue
		}
		if parsed.isPromotion && (m.Kind != PromotionMove || m.Promotion != parsed.promotion) {
			continue
		}
		if !parsed.isPromotion && m.Kind == PromotionMove {
			continue
		}
		if parsed.hasFromFile && m.From.File() != parsed.fromFile {
			continue
		}
		if parsed.hasFromRank && m.From.Rank() != parsed.fromRank {
			continue
		}
		if match != nil {
			return ResolvedMove{}, ErrAmbiguousMove
		}
		mm := m
		match = &mm
	}
	if match == nil {
		return ResolvedMove{}, ErrNoMoveFound
	}
	return ResolvedMove{Move: *match}, nil
}
