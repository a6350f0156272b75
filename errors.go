// errors.go defines the typed error values the package returns instead of
// panicking. Grounded in stdlib-only error handling: no repo retrieved
// alongside the teacher imports a dedicated errors library (pkg/errors,
// cockroachdb/errors), so wrapping via fmt.Errorf("%w", ...) is the
// idiomatic choice here (see DESIGN.md).

package caissa

import (
	"errors"
	"strconv"
)

// Sentinel errors identifying the categories from spec.md §7. Use
// errors.Is to test for a category; wrapped errors carry additional detail
// in their message.
var (
	// ErrNoMoveFound means a SAN token matched no legal move.
	ErrNoMoveFound = errors.New("no matching legal move")
	// ErrAmbiguousMove means a SAN token matched more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")
	// ErrIllegalDrop means a variant rejected a crazyhouse-style drop.
	ErrIllegalDrop = errors.New("illegal drop")
	// ErrInvalidFen means a FEN field failed to parse.
	ErrInvalidFen = errors.New("invalid FEN")
	// ErrParse is a PGN/SAN grammar violation.
	ErrParse = errors.New("PGN parse error")
	// ErrIncompletePgn means a tag, comment, or variation was left unterminated.
	ErrIncompletePgn = errors.New("incomplete PGN")
	// ErrWrongPromotion means a promotion suffix was missing or unexpected.
	ErrWrongPromotion = errors.New("wrong promotion")
)

// ParseError carries the byte offset and a human description of what was
// expected, for PGN/SAN grammar violations.
type ParseError struct {
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	return "PGN parse error at offset " + strconv.Itoa(e.Offset) + ": expected " + e.Expected
}

func (e *ParseError) Unwrap() error { return ErrParse }

// IncompletePgnError marks a tag, comment, or variation left unterminated at
// end of input — distinct from a grammar violation (ErrParse) because the
// input was otherwise well-formed, just truncated.
type IncompletePgnError struct {
	Offset   int
	Expected string
}

func (e *IncompletePgnError) Error() string {
	return "incomplete PGN at offset " + strconv.Itoa(e.Offset) + ": expected " + e.Expected
}

func (e *IncompletePgnError) Unwrap() error { return ErrIncompletePgn }

// WrongPromotionError marks a SAN token whose promotion suffix doesn't match
// the move it otherwise names: present on a non-promoting move, or missing
// on a pawn move reaching the back rank.
type WrongPromotionError struct {
	Token string
}

func (e *WrongPromotionError) Error() string {
	return "wrong promotion in move " + e.Token
}

func (e *WrongPromotionError) Unwrap() error { return ErrWrongPromotion }

// InvalidFenError names the offending FEN field.
type InvalidFenError struct {
	Field  string
	Detail string
}

func (e *InvalidFenError) Error() string {
	return "invalid FEN field " + e.Field + ": " + e.Detail
}

func (e *InvalidFenError) Unwrap() error { return ErrInvalidFen }

// IllegalDropError names why a crazyhouse drop was rejected.
type IllegalDropError struct {
	Reason string
}

func (e *IllegalDropError) Error() string { return "illegal drop: " + e.Reason }

func (e *IllegalDropError) Unwrap() error { return ErrIllegalDrop }
