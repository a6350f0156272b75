// replay.go folds a parsed PGN mainline through a starting Position,
// resolving each SAN token against legal moves and applying it. The teacher
// has no replay concept (Game.PushMove takes an already-legal Move, not
// SAN text) so this is new, built per spec.md §4.8: a left fold that stops
// at the first unresolvable token rather than failing the whole replay.
package caissa

// ReplayResult is the outcome of replaying a PGN mainline.
type ReplayResult struct {
	// Positions holds the starting position followed by the position after
	// each successfully applied ply.
	Positions []Position
	// Plies holds the successfully applied moves/drops, parallel to
	// Positions[1:].
	Plies []ResolvedMove
	// Complete is true iff every token in the mainline resolved and applied.
	Complete bool
	// Err explains why replay stopped short, when Complete is false.
	Err error
	// FailedAt is the index into the mainline of the token that failed, when
	// Complete is false.
	FailedAt int
}

// Replay folds game's mainline moves onto start, stopping at the first ply
// that fails to resolve or apply against the position reached so far.
func Replay(start Position, game *PGNGame) ReplayResult {
	result := ReplayResult{Positions: []Position{start}, Complete: true}
	current := start
	for i, node := range game.Moves {
		resolved, err := ResolveSAN(current, node.SAN)
		if err != nil {
			result.Complete = false
			result.Err = err
			result.FailedAt = i
			return result
		}
		if resolved.IsDrop {
			next, err := current.ApplyDrop(resolved.Drop)
			if err != nil {
				result.Complete = false
				result.Err = err
				result.FailedAt = i
				return result
			}
			current = next
		} else {
			current = current.Apply(resolved.Move)
		}
		result.Plies = append(result.Plies, resolved)
		result.Positions = append(result.Positions, current)
	}
	return result
}
