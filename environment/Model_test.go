package environment

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

// line returns a 3-state corridor 0 <-> 1 <-> 2 with goal state 2
func line() ([][]int, [][]float64) {
	transitions := [][]int{
		{0, 1},
		{0, 2},
		{1, 2},
	}
	rewards := [][]float64{
		{-1, -1},
		{-1, 10},
		{-1, -1},
	}
	return transitions, rewards
}

func TestNewModel(t *testing.T) {
	transitions, rewards := line()
	m, err := NewModel(transitions, rewards, 2)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}

	if m.NumStates() != 3 || m.NumActions() != 2 {
		t.Errorf("newModel: want (3, 2) states and actions, have (%d, %d)",
			m.NumStates(), m.NumActions())
	}
	if m.Next(1, 1) != 2 || m.Reward(1, 1) != 10 {
		t.Errorf("newModel: want transition (1, 1) -> 2 with reward 10, "+
			"have -> %d with reward %v", m.Next(1, 1), m.Reward(1, 1))
	}
	if m.Goal() != 2 {
		t.Errorf("newModel: want goal 2, have %d", m.Goal())
	}
	if spec := m.ActionSpec(); spec.Size != 2 || spec.Cardinality != Discrete {
		t.Errorf("actionSpec: unexpected spec %v", spec)
	}
	if spec := m.StateSpec(); spec.Size != 3 || spec.Type != State {
		t.Errorf("stateSpec: unexpected spec %v", spec)
	}

	// Mutating the inputs must not change the model
	transitions[1][1] = 0
	rewards[1][1] = 0
	if m.Next(1, 1) != 2 || m.Reward(1, 1) != 10 {
		t.Error("newModel: model changed after mutating input tables")
	}

	// Nor should mutating the copies it returns
	table := m.Transitions()
	table[0][0] = 2
	r := m.Rewards()
	r.Set(0, 0, 100)
	if m.Next(0, 0) != 0 || m.Reward(0, 0) != -1 {
		t.Error("newModel: model changed after mutating returned tables")
	}
}

func TestNewModelErrors(t *testing.T) {
	transitions, rewards := line()

	tests := []struct {
		name        string
		transitions [][]int
		rewards     [][]float64
		goal        int
		want        error
	}{
		{"empty", [][]int{}, [][]float64{}, 0, ErrEmptyTable},
		{"no actions", [][]int{{}}, [][]float64{{}}, 0, ErrEmptyTable},
		{
			"ragged transitions",
			[][]int{{0, 1}, {0}, {1, 2}},
			rewards, 2, ErrRaggedTable,
		},
		{
			"ragged rewards",
			transitions,
			[][]float64{{-1, -1}, {-1}, {-1, -1}},
			2, ErrRaggedTable,
		},
		{"missing reward rows", transitions, rewards[:2], 2, ErrRaggedTable},
		{"goal too large", transitions, rewards, 3, ErrGoalOutOfRange},
		{"negative goal", transitions, rewards, -1, ErrGoalOutOfRange},
		{
			"transition out of range",
			[][]int{{0, 1}, {0, 3}, {1, 2}},
			rewards, 2, ErrStateOutOfRange,
		},
		{
			"non-finite reward",
			transitions,
			[][]float64{{-1, -1}, {-1, math.Inf(1)}, {-1, -1}},
			2, ErrNonFinite,
		},
	}

	for _, test := range tests {
		_, err := NewModel(test.transitions, test.rewards, test.goal)
		if !errors.Is(err, test.want) {
			t.Errorf("%v: want error %v, have %v", test.name, test.want, err)
		}
	}
}

func TestUniformStarter(t *testing.T) {
	states := 5
	counts := make([]int, states)

	s := NewUniformStarter(states, rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		start := s.Start()
		if start < 0 || start >= states {
			t.Fatalf("start: state %d out of range", start)
		}
		counts[start]++
	}

	for state, count := range counts {
		if count < 800 || count > 1200 {
			t.Errorf("start: state %d sampled %d times out of 5000",
				state, count)
		}
	}

	// Equal seeds sample equal sequences
	a := NewUniformStarter(states, rand.NewSource(7))
	b := NewUniformStarter(states, rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if a.Start() != b.Start() {
			t.Fatal("start: equal seeds sampled different states")
		}
	}
}
