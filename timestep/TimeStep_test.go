package timestep

import "testing"

// corridor is a 4-state corridor where action 1 moves right, action 0
// stays put, and entering state 3 pays 5
type corridor struct{}

func (corridor) Next(state, action int) int {
	if action == 1 && state < 3 {
		return state + 1
	}
	return state
}

func (c corridor) Reward(state, action int) float64 {
	if c.Next(state, action) == 3 && state != 3 {
		return 5
	}
	return -1
}

func (corridor) Goal() int { return 3 }

func TestRollout(t *testing.T) {
	steps := Rollout(corridor{}, 0, []int{1, 0, 1, 1})

	if len(steps) != 4 {
		t.Fatalf("rollout: want 4 steps, have %d", len(steps))
	}
	if !steps[0].First() {
		t.Errorf("rollout: first step has type %v", steps[0].stepType)
	}
	if !steps[1].Mid() || !steps[2].Mid() {
		t.Error("rollout: middle steps should be Mid")
	}
	if !ReachedGoal(steps) {
		t.Error("rollout: goal should be reached")
	}
	if r := Return(steps); r != 2 {
		t.Errorf("return: want 2, have %v", r)
	}
	for i, step := range steps {
		if step.Number != i+1 {
			t.Errorf("rollout: step %d numbered %d", i, step.Number)
		}
	}
}

func TestRolloutStopsAtGoal(t *testing.T) {
	steps := Rollout(corridor{}, 2, []int{1, 1, 1})
	if len(steps) != 1 || !steps[0].Last() {
		t.Errorf("rollout: want a single Last step, have %v", steps)
	}

	steps = Rollout(corridor{}, 3, []int{1})
	if len(steps) != 0 || ReachedGoal(steps) {
		t.Errorf("rollout: want no steps from the goal, have %v", steps)
	}
}

func TestRolloutPartial(t *testing.T) {
	steps := Rollout(corridor{}, 0, []int{1, 0})
	if ReachedGoal(steps) {
		t.Error("rollout: partial action list should not reach the goal")
	}
	if r := Return(steps); r != -2 {
		t.Errorf("return: want -2, have %v", r)
	}
}
