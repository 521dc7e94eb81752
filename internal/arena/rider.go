package arena

import "math"

// Personality is the fixed heuristic strategy governing one autonomous rider
// for a session. Dispatch happens once per decision call; each behavior's
// scoring function is independently testable.
type Personality int

const (
	PersonalityNone Personality = iota
	Avoidant
	Engaging
	Aggressive
)

func (p Personality) String() string {
	switch p {
	case Avoidant:
		return "avoidant"
	case Engaging:
		return "engaging"
	case Aggressive:
		return "aggressive"
	default:
		return "none"
	}
}

// moveOption is one of the ≤3 candidate moves whose immediate next cell is
// free. Enumeration order is straight, left, right; ties resolve to the
// earliest option.
type moveOption struct {
	turn    Turn
	heading Direction
	target  Cell
}

// safeOptions returns the candidate moves whose immediate target cell is
// free, in straight/left/right order. Personalities choose only among these.
func safeOptions(b *Bike, g *Grid) []moveOption {
	options := make([]moveOption, 0, 3)
	for _, t := range []Turn{TurnNone, TurnLeft, TurnRight} {
		h := b.Heading
		switch t {
		case TurnLeft:
			h = h.Left()
		case TurnRight:
			h = h.Right()
		}
		dx, dz := h.Vector()
		target := Cell{X: b.Pos.X + dx, Z: b.Pos.Z + dz}
		if g.IsFree(target) {
			options = append(options, moveOption{turn: t, heading: h, target: target})
		}
	}
	return options
}

// lookAhead counts consecutive free cells straight ahead of the cell along
// the heading, capped at maxSteps. 0 means immediately blocked.
func lookAhead(c Cell, heading Direction, maxSteps int, g *Grid) int {
	dx, dz := heading.Vector()
	steps := 0
	cur := c
	for steps < maxSteps {
		cur = Cell{X: cur.X + dx, Z: cur.Z + dz}
		if !g.IsFree(cur) {
			break
		}
		steps++
	}
	return steps
}

// floodFill counts the cells reachable from the start through free cells
// only, capped at cap visited nodes. Uses an explicit worklist and a visited
// set keyed by packed coordinate so the node cap bounds both time and stack.
func floodFill(start Cell, g *Grid, cap int) int {
	if !g.IsFree(start) {
		return 0
	}
	n := g.Size()
	visited := map[int]bool{start.Z*n + start.X: true}
	worklist := []Cell{start}
	count := 0

	for len(worklist) > 0 && count < cap {
		cur := worklist[0]
		worklist = worklist[1:]
		count++

		for _, d := range []Direction{North, East, South, West} {
			dx, dz := d.Vector()
			next := Cell{X: cur.X + dx, Z: cur.Z + dz}
			if !g.IsFree(next) {
				continue
			}
			key := next.Z*n + next.X
			if visited[key] {
				continue
			}
			visited[key] = true
			worklist = append(worklist, next)
		}
	}
	return count
}

// manhattan returns the Manhattan distance between two cells.
func manhattan(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// Decide returns the steering intent for an autonomous rider. Pure: identical
// grid and rider states always produce the same decision. Returns TurnNone
// when going straight is best or when no safe option exists (the rider then
// proceeds straight into whatever the tick resolves).
func Decide(b *Bike, g *Grid, opponent *Bike, tuning Tuning) Turn {
	switch b.Personality {
	case Engaging:
		return decideEngaging(b, g, tuning)
	case Aggressive:
		return decideAggressive(b, g, opponent, tuning)
	default:
		return decideAvoidant(b, g, tuning)
	}
}

func decideAvoidant(b *Bike, g *Grid, tuning Tuning) Turn {
	options := safeOptions(b, g)
	if len(options) == 0 {
		return TurnNone
	}

	best := options[0]
	bestScore := math.Inf(-1)
	for _, opt := range options {
		score := tuning.AvoidantFloodWeight*float64(floodFill(opt.target, g, tuning.AvoidantFloodCap)) +
			float64(lookAhead(opt.target, opt.heading, tuning.AvoidantLookSteps, g))
		if score > bestScore {
			bestScore = score
			best = opt
		}
	}
	return best.turn
}

func decideEngaging(b *Bike, g *Grid, tuning Tuning) Turn {
	options := safeOptions(b, g)
	if len(options) == 0 {
		return TurnNone
	}

	best := options[0]
	bestScore := math.Inf(-1)
	for _, opt := range options {
		score := tuning.EngagingLookWeight*float64(lookAhead(opt.target, opt.heading, tuning.EngagingLookSteps, g)) +
			tuning.EngagingFloodWeight*float64(floodFill(opt.target, g, tuning.EngagingFloodCap))
		if score > bestScore {
			bestScore = score
			best = opt
		}
	}
	return best.turn
}

func decideAggressive(b *Bike, g *Grid, opponent *Bike, tuning Tuning) Turn {
	if opponent == nil || !opponent.Alive {
		return decideAvoidant(b, g, tuning)
	}
	if manhattan(b.Pos, opponent.Pos) > tuning.AggroRange {
		// Hunting is not worth the risk at range.
		return decideEngaging(b, g, tuning)
	}

	// Straight-line extrapolation of the opponent's current heading. This
	// deliberately ignores the opponent's own queued turn.
	dx, dz := opponent.Heading.Vector()
	predicted := Cell{
		X: opponent.Pos.X + dx*tuning.PredictTicks,
		Z: opponent.Pos.Z + dz*tuning.PredictTicks,
	}

	options := safeOptions(b, g)
	if len(options) == 0 {
		return TurnNone
	}

	best := options[0]
	bestScore := math.Inf(-1)
	for _, opt := range options {
		// Options without enough clearance are suicide charges; reject them
		// outright rather than let pursuit outweigh the wall.
		if lookAhead(opt.target, opt.heading, tuning.MinClearance, g) < tuning.MinClearance {
			continue
		}
		score := tuning.PursuitWeight*(tuning.PursuitScale-float64(manhattan(opt.target, predicted))) +
			tuning.AggressiveFloodWeight*float64(floodFill(opt.target, g, tuning.AggressiveFloodCap))
		if score > bestScore {
			bestScore = score
			best = opt
		}
	}

	if math.IsInf(bestScore, -1) || bestScore < 0 {
		return decideAvoidant(b, g, tuning)
	}
	return best.turn
}
