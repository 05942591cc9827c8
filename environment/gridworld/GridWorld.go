// Package gridworld implements 2D gridworld problems which compile to
// tabular environment Models
package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/tdlearn/environment"
)

// Actions available in a GridWorld
const (
	Up int = iota
	Right
	Down
	Left
)

// NumActions is the number of actions in every GridWorld
const NumActions int = 4

// ActionNames holds the name of each action, indexed by action
var ActionNames = []string{"Up", "Right", "Down", "Left"}

// arrows renders each action on the grid
var arrows = []string{"^", ">", "v", "<"}

// Row and column offsets of each action
var (
	rowOffset = []int{-1, 0, 1, 0}
	colOffset = []int{0, 1, 0, -1}
)

// Position is a cell in a GridWorld. Row 0 is the top row of the grid.
type Position struct {
	Row, Col int
}

// String implements the fmt.Stringer interface
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// GridWorld represents a gridworld problem
//
// A gridworld is represented as a flattened matrix: the cell at row r
// and column c is the state r*cols + c. Moving off the grid leaves the
// agent at the edge. After each move, the wind in the destination
// column pushes the agent upwards by that many cells. Entering a cliff
// cell returns the agent to the start position.
type GridWorld struct {
	rows, cols int
	start      Position
	goal       Position

	wind  []int
	cliff map[Position]float64

	stepReward float64
	goalReward float64
}

// New creates a new rows x cols gridworld with the given start and goal
// positions. Every transition into the goal yields goalReward and every
// other transition yields stepReward.
func New(rows, cols int, start, goal Position, stepReward,
	goalReward float64) (*GridWorld, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new: cannot create %dx%d grid", rows, cols)
	}

	g := &GridWorld{
		rows:       rows,
		cols:       cols,
		start:      start,
		goal:       goal,
		wind:       make([]int, cols),
		cliff:      make(map[Position]float64),
		stepReward: stepReward,
		goalReward: goalReward,
	}

	if !g.contains(start) {
		return nil, fmt.Errorf("new: start %v outside %dx%d grid", start,
			rows, cols)
	}
	if !g.contains(goal) {
		return nil, fmt.Errorf("new: goal %v outside %dx%d grid", goal,
			rows, cols)
	}

	return g, nil
}

// SetWind sets the upwards wind strength of each column
func (g *GridWorld) SetWind(wind []int) error {
	if len(wind) != g.cols {
		return fmt.Errorf("setWind: got %d columns of wind, want %d",
			len(wind), g.cols)
	}
	for col, w := range wind {
		if w < 0 {
			return fmt.Errorf("setWind: column %d has negative wind %d",
				col, w)
		}
	}

	g.wind = append(g.wind[:0], wind...)
	return nil
}

// AddCliff marks p as a cliff cell. Moving into p yields reward and
// sends the agent back to the start position.
func (g *GridWorld) AddCliff(p Position, reward float64) error {
	if !g.contains(p) {
		return fmt.Errorf("addCliff: %v outside %dx%d grid", p, g.rows,
			g.cols)
	}
	if p == g.start || p == g.goal {
		return fmt.Errorf("addCliff: %v is the start or goal", p)
	}

	g.cliff[p] = reward
	return nil
}

// Model compiles the gridworld into a tabular Model
func (g *GridWorld) Model() (*environment.Model, error) {
	numStates := g.rows * g.cols
	transitions := make([][]int, numStates)
	rewards := make([][]float64, numStates)

	for state := 0; state < numStates; state++ {
		transitions[state] = make([]int, NumActions)
		rewards[state] = make([]float64, NumActions)

		for action := 0; action < NumActions; action++ {
			next, reward := g.move(g.Coordinates(state), action)
			transitions[state][action] = g.State(next)
			rewards[state][action] = reward
		}
	}

	return environment.NewModel(transitions, rewards, g.State(g.goal))
}

// move returns the position reached and reward received by taking
// action from p
func (g *GridWorld) move(p Position, action int) (Position, float64) {
	next := Position{
		Row: clip(p.Row+rowOffset[action], g.rows),
		Col: clip(p.Col+colOffset[action], g.cols),
	}
	next.Row = clip(next.Row-g.wind[next.Col], g.rows)

	if reward, ok := g.cliff[next]; ok {
		return g.start, reward
	}
	if next == g.goal {
		return next, g.goalReward
	}
	return next, g.stepReward
}

// clip clips x to [0, size)
func clip(x, size int) int {
	if x < 0 {
		return 0
	}
	if x >= size {
		return size - 1
	}
	return x
}

func (g *GridWorld) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// State returns the state index of position p
func (g *GridWorld) State(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinates returns the position of state
func (g *GridWorld) Coordinates(state int) Position {
	return Position{Row: state / g.cols, Col: state % g.cols}
}

// Start returns the start state
func (g *GridWorld) Start() int {
	return g.State(g.start)
}

// Goal returns the goal state
func (g *GridWorld) Goal() int {
	return g.State(g.goal)
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.rows, g.cols
}

// Describe returns the names of actions, e.g. "Right Right Up"
func Describe(actions []int) string {
	names := make([]string, len(actions))
	for i, action := range actions {
		if action < 0 || action >= NumActions {
			names[i] = fmt.Sprintf("Action(%d)", action)
			continue
		}
		names[i] = ActionNames[action]
	}
	return strings.Join(names, " ")
}

// Render draws the grid with the path taken by following actions from
// the state start. S marks the start, G the goal and C cliff cells.
// Visited cells show the arrow of the action taken there.
func (g *GridWorld) Render(start int, actions []int) string {
	cells := make([][]string, g.rows)
	for r := range cells {
		cells[r] = make([]string, g.cols)
		for c := range cells[r] {
			cells[r][c] = "."
		}
	}
	for p := range g.cliff {
		cells[p.Row][p.Col] = "C"
	}

	state := start
	for _, action := range actions {
		if action < 0 || action >= NumActions {
			break
		}
		p := g.Coordinates(state)
		cells[p.Row][p.Col] = arrows[action]
		next, _ := g.move(p, action)
		state = g.State(next)
	}

	cells[g.start.Row][g.start.Col] = "S"
	cells[g.goal.Row][g.goal.Col] = "G"

	var b strings.Builder
	for r := range cells {
		b.WriteString(strings.Join(cells[r], " "))
		b.WriteString("\n")
	}

	// Wind strengths beneath their columns
	for c, w := range g.wind {
		if c > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", w)
	}
	b.WriteString("\n")

	return b.String()
}
