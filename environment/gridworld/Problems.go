package gridworld

// Rewards of the windy gridworld
const (
	WindyStepReward float64 = -1
	WindyGoalReward float64 = 100
)

// Rewards of the cliff walking gridworld
const (
	CliffStepReward float64 = -1
	CliffGoalReward float64 = 0
	CliffFallReward float64 = -100
)

// Windy returns the 7x10 windy gridworld with the default rewards
func Windy() *GridWorld {
	g, err := NewWindy(WindyStepReward, WindyGoalReward)
	if err != nil {
		panic(err)
	}
	return g
}

// NewWindy returns the 7x10 windy gridworld. The agent starts in the
// left-most cell of the middle row and the goal is seven cells to the
// right of it. Columns 3 to 8 have an upwards wind.
func NewWindy(stepReward, goalReward float64) (*GridWorld, error) {
	start := Position{Row: 3, Col: 0}
	goal := Position{Row: 3, Col: 7}

	g, err := New(7, 10, start, goal, stepReward, goalReward)
	if err != nil {
		return nil, err
	}

	if err := g.SetWind([]int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0}); err != nil {
		return nil, err
	}
	return g, nil
}

// Cliff returns the 4x12 cliff walking gridworld with the default
// rewards
func Cliff() *GridWorld {
	g, err := NewCliff(CliffStepReward, CliffGoalReward, CliffFallReward)
	if err != nil {
		panic(err)
	}
	return g
}

// NewCliff returns the 4x12 cliff walking gridworld. The start and goal
// are the bottom-left and bottom-right cells and every cell between
// them is a cliff.
func NewCliff(stepReward, goalReward, fallReward float64) (*GridWorld,
	error) {
	rows, cols := 4, 12
	start := Position{Row: rows - 1, Col: 0}
	goal := Position{Row: rows - 1, Col: cols - 1}

	g, err := New(rows, cols, start, goal, stepReward, goalReward)
	if err != nil {
		return nil, err
	}

	for col := 1; col < cols-1; col++ {
		if err := g.AddCliff(Position{Row: rows - 1, Col: col},
			fallReward); err != nil {
			return nil, err
		}
	}
	return g, nil
}
