// game.go wraps Position with end-of-game queries. Grounded in the
// teacher's game.go (Game/NewGame/PushMove/IsThreefoldRepetition/
// IsInsufficientMaterial/IsCheckmate/IsMoveLegal/SetClock), generalized to
// dispatch every rule through the active Variant instead of hard-coded
// Standard logic.
package caissa

// Outcome describes how and whether a game has ended.
type Outcome int

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Status reports the current Position's outcome, per spec.md §4.5's
// per-variant checkmate/stalemate/insufficient-material/special-end rules.
func Status(p Position) Outcome {
	if over, winner, win := p.Variant.SpecialEnd(p); over {
		if !win {
			return Draw
		}
		if winner == White {
			return WhiteWins
		}
		return BlackWins
	}
	if p.Variant.Checkmate(p) {
		if p.ActiveColor == White {
			return BlackWins
		}
		return WhiteWins
	}
	if p.Variant.Stalemate(p) {
		return Draw
	}
	if p.Variant.InsufficientMaterial(p) {
		return Draw
	}
	if p.Variant.SpecialDraw(p) {
		return Draw
	}
	if IsThreefoldRepetition(p) {
		return Draw
	}
	if p.History.HalfmoveClock >= 100 {
		return Draw
	}
	return Ongoing
}

// IsThreefoldRepetition reports whether the current position's hash has
// occurred at least three times in the game's history.
func IsThreefoldRepetition(p Position) bool {
	return repetitionCount(p) >= 3
}

// IsFivefoldRepetition is the FIDE automatic-draw threshold.
func IsFivefoldRepetition(p Position) bool {
	return repetitionCount(p) >= 5
}

func repetitionCount(p Position) int {
	if len(p.History.Hashes) == 0 {
		return 0
	}
	target := p.History.Hashes[len(p.History.Hashes)-1]
	count := 0
	for _, h := range p.History.Hashes {
		if h == target {
			count++
		}
	}
	return count
}

// IsMoveLegal reports whether m appears in p's legal moves (comparing the
// fields that identify a move, not the Before/After pointers Apply attaches).
func IsMoveLegal(p Position, m Move) bool {
	for _, legal := range p.LegalMoves() {
		if legal.Kind == m.Kind && legal.From == m.From && legal.To == m.To &&
			legal.Promotion == m.Promotion {
			return true
		}
	}
	return false
}
