package qlearning

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/agent"
	"github.com/samuelfneumann/tdlearn/agent/tabular"
	"github.com/samuelfneumann/tdlearn/environment"
	"github.com/samuelfneumann/tdlearn/environment/gridworld"
	"github.com/samuelfneumann/tdlearn/oracle"
	"github.com/samuelfneumann/tdlearn/timestep"
)

func windy(t testing.TB) (*gridworld.GridWorld, *environment.Model) {
	g := gridworld.Windy()
	m, err := g.Model()
	if err != nil {
		t.Fatalf("could not create windy gridworld: %v", err)
	}
	return g, m
}

func TestWindyGridWorld(t *testing.T) {
	g, m := windy(t)
	q, err := New(m, NewConfig(0.1, 0.8), tabular.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20000; i++ {
		q.Train()
	}

	shortest, err := oracle.ShortestPath(m, g.Start())
	if err != nil {
		t.Fatal(err)
	}

	strategy := q.Strategy(g.Start())
	steps := timestep.Rollout(m, g.Start(), strategy)
	if !timestep.ReachedGoal(steps) {
		t.Fatalf("strategy %v does not reach the goal:\n%v",
			gridworld.Describe(strategy), g.Render(g.Start(), strategy))
	}

	if len(strategy) != len(shortest) {
		t.Errorf("strategy has %d actions, shortest path has %d:\n%v",
			len(strategy), len(shortest), g.Render(g.Start(), strategy))
	}

	want := timestep.Return(timestep.Rollout(m, g.Start(), shortest))
	if got := timestep.Return(steps); got != want {
		t.Errorf("strategy reward = %v, want %v", got, want)
	}
}

func TestStartActionRandom(t *testing.T) {
	// Every action leads from state 0 to the goal, only action 0 pays
	m, err := environment.NewModel(
		[][]int{{1, 1, 1, 1}, {1, 1, 1, 1}},
		[][]float64{{10, 0, 0, 0}, {0, 0, 0, 0}},
		1,
	)
	if err != nil {
		t.Fatal(err)
	}

	c := NewConfig(1, 0.5)
	c.Epsilon = 0
	q, err := New(m, c, tabular.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		q.Train()
	}
	if q.Quality(0, 0) != 10 {
		t.Fatalf("Q(0, 0) = %v, want 10", q.Quality(0, 0))
	}

	// The behaviour policy is fully greedy in state 0
	for i := 0; i < 100; i++ {
		if a := q.SelectAction(0); a != 0 {
			t.Fatalf("selectAction(0) = %d, want 0", a)
		}
	}

	// Episodes still start with any action
	counts := make([]int, m.NumActions())
	for i := 0; i < 4000; i++ {
		_, action := bootstrapper{}.Start(q.TD)
		counts[action]++
	}
	for action, count := range counts {
		if count < 800 || count > 1200 {
			t.Errorf("start action %d chosen %d of 4000 times", action,
				count)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g, m := windy(t)

	agents := make([]*QLearning, 2)
	for i := range agents {
		q, err := New(m, NewConfig(0.5, 0.9), 7)
		if err != nil {
			t.Fatal(err)
		}
		agents[i] = q
	}

	for i := 0; i < 500; i++ {
		if a, b := agents[0].Train(), agents[1].Train(); a != b {
			t.Fatalf("episode %d: total quality %v != %v", i, a, b)
		}
	}

	if !mat.Equal(agents[0].ActionValues(), agents[1].ActionValues()) {
		t.Errorf("action values differ for equal seeds")
	}

	first := agents[0].Strategy(g.Start())
	second := agents[1].Strategy(g.Start())
	if gridworld.Describe(first) != gridworld.Describe(second) {
		t.Errorf("strategies differ for equal seeds: %v != %v", first,
			second)
	}
}

func TestConfig(t *testing.T) {
	_, m := windy(t)

	c := NewConfig(0.1, 0.8)
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Type() != agent.QLearningTabular {
		t.Errorf("type = %v, want %v", c.Type(), agent.QLearningTabular)
	}

	a, err := c.CreateAgent(m, tabular.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	if !c.ValidAgent(a) {
		t.Errorf("config does not accept its own agent")
	}

	c.Discount = 1
	if err := c.Validate(); err == nil {
		t.Errorf("expected error for discount 1")
	}
	if _, err := New(m, c, tabular.DefaultSeed); err == nil {
		t.Errorf("expected error creating agent with discount 1")
	}
}

func TestConfigList(t *testing.T) {
	list := NewConfigList(
		[]float64{0.1, 0.5},
		[]float64{0.8, 0.9, 0.99},
		[]float64{tabular.DefaultEpsilon},
		[]float64{tabular.DefaultTolerance},
	)

	if list.Len() != 6 {
		t.Fatalf("len = %d, want 6", list.Len())
	}
	if list.NumFields() != 4 {
		t.Errorf("fields = %d, want 4", list.NumFields())
	}
	if list.Type != agent.QLearningTabular {
		t.Errorf("type = %v, want %v", list.Type, agent.QLearningTabular)
	}

	// The last field varies fastest
	want := Config{0.5, 0.8, tabular.DefaultEpsilon, tabular.DefaultTolerance}
	if c := list.At(3).(Config); c != want {
		t.Errorf("config 3 = %+v, want %+v", c, want)
	}
}

func BenchmarkTrain(b *testing.B) {
	_, m := windy(b)
	q, err := New(m, NewConfig(0.1, 0.8), tabular.DefaultSeed)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Train()
	}
}
