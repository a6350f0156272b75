// Package perft implements the move-generator node-counting test used to
// check Position.LegalMoves against the known-good counts from spec.md §8.
// Grounded in the teacher's internal/perft (perft/perftVerbose walking the
// move tree with copy-make), generalized from chego.Position/MoveList to
// caissa.Position/[]Move and the per-variant Variant.ValidMoves dispatch.
package perft

import "github.com/caissalib/caissa"

// Result tallies the leaf-node breakdown perftVerbose-style tools report.
type Result struct {
	Nodes      int
	Captures   int
	EnPassants int
	Castles    int
	Promotions int
	Checks     int
	Checkmates int
}

// Count walks the legal-move tree to depth and returns the leaf count.
func Count(p caissa.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		nodes += Count(p.Apply(m), depth-1)
	}
	return nodes
}

// CountVerbose walks the legal-move tree to depth, accumulating the
// per-category breakdown into r in addition to the leaf count.
func CountVerbose(p caissa.Position, depth int, r *Result) int {
	if depth == 0 {
		r.Nodes++
		if p.Variant.InCheck(p) {
			r.Checks++
			if len(p.Variant.ValidMoves(p)) == 0 {
				r.Checkmates++
			}
		}
		return 1
	}
	nodes := 0
	for _, m := range p.LegalMoves() {
		if depth == 1 {
			if m.IsCapture {
				r.Captures++
			}
			if m.Kind == caissa.EnPassant {
				r.EnPassants++
			}
			if m.Kind == caissa.Castle {
				r.Castles++
			}
			if m.Kind == caissa.PromotionMove {
				r.Promotions++
			}
		}
		nodes += CountVerbose(p.Apply(m), depth-1, r)
	}
	return nodes
}
