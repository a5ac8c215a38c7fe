package memory

// Star rating bounds.
const (
	MaxStars = 3
	MinStars = 1
)

// StarsFor rates a move count against par (the level's pair count).
// More than twice par earns one star, more than one and a half times par
// earns two, anything else three.
func StarsFor(moves, par int) int {
	switch {
	case moves > par*2:
		return 1
	case 2*moves > 3*par: // moves > 1.5 * par without floats
		return 2
	default:
		return MaxStars
	}
}
