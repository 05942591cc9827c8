package tabular

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/environment"
	"github.com/samuelfneumann/tdlearn/environment/gridworld"
)

// fixedStart starts every episode with the same state and action and
// bootstraps off the greedy action
type fixedStart struct {
	state, action int
}

func (f fixedStart) Start(*TD) (int, int) {
	return f.state, f.action
}

func (f fixedStart) Next(td *TD, next int) int {
	return td.GreedyAction(next)
}

// onPolicy chooses every action with the behaviour policy
type onPolicy struct{}

func (onPolicy) Start(td *TD) (int, int) {
	state := td.SelectState()
	return state, td.SelectAction(state)
}

func (onPolicy) Next(td *TD, next int) int {
	return td.SelectAction(next)
}

// continuousStates reports continuous states for an otherwise valid
// Model
type continuousStates struct {
	*environment.Model
}

func (c continuousStates) StateSpec() environment.Spec {
	return environment.NewSpec(environment.State, c.NumStates(),
		environment.Continuous)
}

func windy(t testing.TB) *environment.Model {
	m, err := gridworld.Windy().Model()
	if err != nil {
		t.Fatalf("could not create windy gridworld: %v", err)
	}
	return m
}

func newModel(t testing.TB, transitions [][]int, rewards [][]float64,
	goal int) *environment.Model {
	m, err := environment.NewModel(transitions, rewards, goal)
	if err != nil {
		t.Fatalf("could not create model: %v", err)
	}
	return m
}

func config(learningRate, discount float64) Config {
	return Config{
		LearningRate: learningRate,
		Discount:     discount,
		Epsilon:      DefaultEpsilon,
		Tolerance:    DefaultTolerance,
	}
}

func TestSingleUpdate(t *testing.T) {
	// Single action from state 0 into the goal state 1
	m := newModel(t, [][]int{{1}, {1}}, [][]float64{{1}, {0}}, 1)
	td, err := New(m, fixedStart{0, 0}, config(0.5, 0.9), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	// Q ← Q + α(r + γQ(goal, ·) - Q)
	for _, want := range []float64{0.5, 0.75, 0.875} {
		if total := td.Train(); total != want {
			t.Errorf("total quality = %v, want %v", total, want)
		}
		if q := td.Quality(0, 0); q != want {
			t.Errorf("quality = %v, want %v", q, want)
		}
	}

	if q := td.Quality(1, 0); q != 0 {
		t.Errorf("goal quality = %v, want 0", q)
	}
}

func TestTotalQuality(t *testing.T) {
	// 0 -> 1 -> 2 (goal) with action 0, action 1 stays put
	m := newModel(t,
		[][]int{{1, 0}, {2, 1}, {2, 2}},
		[][]float64{{-1, -1}, {10, -1}, {0, 0}},
		2,
	)
	td, err := New(m, fixedStart{0, 0}, config(1, 0.5), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	// Q(0, 0) = -1 + 0.5 * Q(1, 0) = -1 and Q(1, 0) = 10
	if total := td.Train(); total != 9 {
		t.Errorf("first total quality = %v, want 9", total)
	}

	// Q(0, 0) = -1 + 0.5 * 10 = 4 and Q(1, 0) = 10
	if total := td.Train(); total != 14 {
		t.Errorf("second total quality = %v, want 14", total)
	}
}

func TestFiniteValues(t *testing.T) {
	m := windy(t)
	td, err := New(m, onPolicy{}, config(0.5, 0.9), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		if total := td.Train(); math.IsNaN(total) || math.IsInf(total, 0) {
			t.Fatalf("episode %d: total quality %v not finite", i, total)
		}
	}

	values := td.ActionValues()
	r, c := values.Dims()
	for s := 0; s < r; s++ {
		for a := 0; a < c; a++ {
			if v := values.At(s, a); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("Q(%d, %d) = %v not finite", s, a, v)
			}
		}
	}
	for a := 0; a < c; a++ {
		if v := values.At(m.Goal(), a); v != 0 {
			t.Errorf("Q(goal, %d) = %v, want 0", a, v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	m := windy(t)
	learners := make([]*TD, 2)
	for i := range learners {
		td, err := New(m, onPolicy{}, config(0.5, 0.9), 42)
		if err != nil {
			t.Fatal(err)
		}
		learners[i] = td
	}

	for i := 0; i < 100; i++ {
		first, second := learners[0].Train(), learners[1].Train()
		if first != second {
			t.Fatalf("episode %d: total quality %v != %v", i, first, second)
		}
	}

	if !mat.Equal(learners[0].ActionValues(), learners[1].ActionValues()) {
		t.Errorf("action values differ for equal seeds")
	}

	start := gridworld.Windy().Start()
	first, second := learners[0].Strategy(start), learners[1].Strategy(start)
	if !equal(first, second) {
		t.Errorf("strategies differ for equal seeds: %v != %v", first, second)
	}
}

func TestStrategyIdempotent(t *testing.T) {
	m := windy(t)
	td, err := New(m, onPolicy{}, config(0.5, 0.9), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		td.Train()
	}

	values := td.ActionValues()
	start := gridworld.Windy().Start()
	first := td.Strategy(start)
	if second := td.Strategy(start); !equal(first, second) {
		t.Errorf("strategy not idempotent: %v != %v", first, second)
	}
	if !mat.Equal(values, td.ActionValues()) {
		t.Errorf("strategy changed the action values")
	}
}

func TestStrategyUntrained(t *testing.T) {
	m := windy(t)
	td, err := New(m, onPolicy{}, config(0.5, 0.9), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	// All values are tied, so the first action is always taken and
	// the strategy walks into the top wall
	g := gridworld.Windy()
	strategy := td.Strategy(g.Start())
	want := []int{gridworld.Up, gridworld.Up, gridworld.Up, gridworld.Up}
	if !equal(strategy, want) {
		t.Errorf("strategy = %v, want %v", strategy, want)
	}

	for state := 0; state < m.NumStates(); state++ {
		if l := len(td.Strategy(state)); l > m.NumStates() {
			t.Errorf("strategy from %d has %d actions > %d states", state,
				l, m.NumStates())
		}
	}

	if s := td.Strategy(g.Goal()); len(s) != 0 {
		t.Errorf("strategy from goal = %v, want empty", s)
	}
}

func TestStrategyTieBreak(t *testing.T) {
	// Both actions lead from state 0 to the goal with equal reward
	m := newModel(t, [][]int{{1, 1}, {1, 1}}, [][]float64{{1, 1}, {0, 0}}, 1)
	c := config(1, 0.9)
	c.Epsilon = 1
	td, err := New(m, onPolicy{}, c, DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		td.Train()
	}
	if td.Quality(0, 0) != 1 || td.Quality(0, 1) != 1 {
		t.Fatalf("Q(0, ·) = [%v %v], want [1 1]", td.Quality(0, 0),
			td.Quality(0, 1))
	}

	if s := td.Strategy(0); !equal(s, []int{0}) {
		t.Errorf("strategy = %v, want [0]", s)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		ok   bool
	}{
		{"valid", config(0.1, 0.8), true},
		{"learning rate one", config(1, 0.8), true},
		{"zero discount", config(0.1, 0), true},
		{"zero learning rate", config(0, 0.8), false},
		{"large learning rate", config(1.5, 0.8), false},
		{"discount one", config(0.1, 1), false},
		{"negative discount", config(0.1, -0.1), false},
		{"negative epsilon", Config{0.1, 0.8, -0.1, 0}, false},
		{"large epsilon", Config{0.1, 0.8, 1.1, 0}, false},
		{"negative tolerance", Config{0.1, 0.8, 0.1, -1}, false},
		{"nan tolerance", Config{0.1, 0.8, 0.1, math.NaN()}, false},
	}

	for _, test := range tests {
		err := test.c.Validate()
		if test.ok && err != nil {
			t.Errorf("%v: unexpected error %v", test.name, err)
		} else if !test.ok && err == nil {
			t.Errorf("%v: expected error", test.name)
		}
	}
}

func TestNewErrors(t *testing.T) {
	m := windy(t)
	c := config(0.1, 0.8)

	if _, err := New(nil, onPolicy{}, c, DefaultSeed); err == nil {
		t.Errorf("expected error for nil environment")
	}
	if _, err := New(m, nil, c, DefaultSeed); err == nil {
		t.Errorf("expected error for nil bootstrapper")
	}
	if _, err := New(m, onPolicy{}, config(0, 0.8), DefaultSeed); err == nil {
		t.Errorf("expected error for invalid config")
	}
	if _, err := New(continuousStates{m}, onPolicy{}, c,
		DefaultSeed); err == nil {
		t.Errorf("expected error for continuous states")
	}
}

func TestActionValuesCopy(t *testing.T) {
	m := windy(t)
	td, err := New(m, onPolicy{}, config(0.1, 0.8), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	values := td.ActionValues()
	values.Set(0, 0, 10)
	if q := td.Quality(0, 0); q != 0 {
		t.Errorf("modifying copy changed quality to %v", q)
	}

	r, c := values.Dims()
	if r != m.NumStates() || c != m.NumActions() {
		t.Errorf("dims = (%d, %d), want (%d, %d)", r, c, m.NumStates(),
			m.NumActions())
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
