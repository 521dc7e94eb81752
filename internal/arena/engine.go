package arena

// StepResult reports what one engine step resolved.
type StepResult struct {
	Deaths []int // Rider ids eliminated this tick, in id order
	Over   bool  // True when ≤1 rider remains alive
	Winner int   // Sole survivor's id; 0 for a draw or while running
}

// Engine resolves one discrete simulation step over the shared grid.
// The fixed order within a step is: decide, detect, commit deaths, commit
// moves, win check. No partial-step state is ever observable.
type Engine struct {
	grid         *Grid
	bikes        []*Bike
	controlledID int
	tuning       Tuning
}

// NewEngine creates an engine over the given grid and riders.
// controlledID names the rider driven by external input; all others are
// decided by their personalities.
func NewEngine(grid *Grid, bikes []*Bike, controlledID int, tuning Tuning) *Engine {
	return &Engine{
		grid:         grid,
		bikes:        bikes,
		controlledID: controlledID,
		tuning:       tuning,
	}
}

// controlled returns the externally driven bike, or nil.
func (e *Engine) controlled() *Bike {
	for _, b := range e.bikes {
		if b.ID == e.controlledID {
			return b
		}
	}
	return nil
}

// Step runs exactly one tick.
func (e *Engine) Step() StepResult {
	opponent := e.controlled()

	// 1. Decisions. Autonomous riders queue at most one turn; decisions never
	// move anything directly. The controlled rider is steered externally and
	// carries no personality.
	for _, b := range e.bikes {
		if !b.Alive || b.ID == e.controlledID || b.Personality == PersonalityNone {
			continue
		}
		if turn := Decide(b, e.grid, opponent, e.tuning); turn != TurnNone {
			b.QueueTurn(turn)
		}
	}

	// 2. Detection against the grid as committed at tick start. Out of
	// bounds kills everyone; a claimed target kills only grounded riders.
	dying := make(map[int]bool)
	targets := make(map[int]Cell)
	for _, b := range e.bikes {
		if !b.Alive {
			continue
		}
		target, _ := b.PeekNext()
		targets[b.ID] = target
		if !e.grid.InBounds(target) {
			dying[b.ID] = true
			continue
		}
		if !b.Airborne() && e.grid.Owner(target) != 0 {
			dying[b.ID] = true
		}
	}

	// 3. Head-on resolution: every cell targeted by two or more surviving
	// riders eliminates them all. Discovery order cannot bias the outcome
	// because the whole group dies.
	byTarget := make(map[Cell][]int)
	for _, b := range e.bikes {
		if !b.Alive || dying[b.ID] {
			continue
		}
		byTarget[targets[b.ID]] = append(byTarget[targets[b.ID]], b.ID)
	}
	for _, ids := range byTarget {
		if len(ids) >= 2 {
			for _, id := range ids {
				dying[id] = true
			}
		}
	}

	// 4. Commit deaths. Trails release immediately so no freshly-dead trail
	// blocks a survivor's move in step 5; detection already ran, so freed
	// cells cannot save anyone this tick.
	var result StepResult
	for _, b := range e.bikes {
		if b.Alive && dying[b.ID] {
			b.Die(e.grid)
			result.Deaths = append(result.Deaths, b.ID)
		}
	}

	// 5. Commit moves. Grounded survivors claim the cell they are leaving as
	// trail; airborne traversal claims nothing. Claims only ever touch a
	// mover's own cells, so order across riders does not matter.
	for _, b := range e.bikes {
		if !b.Alive {
			continue
		}
		if !b.Airborne() {
			e.grid.Claim(b.Pos, b.ID)
			b.markTrail(b.Pos)
		}
		b.Advance()
	}

	// 6. Win check.
	aliveCount := 0
	last := 0
	for _, b := range e.bikes {
		if b.Alive {
			aliveCount++
			last = b.ID
		}
	}
	if aliveCount <= 1 {
		result.Over = true
		if aliveCount == 1 {
			result.Winner = last
		}
	}
	return result
}
