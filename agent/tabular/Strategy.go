package tabular

// Strategy generates a sequence of actions to traverse from the start
// state to the goal state by greedily following the learned action
// values. Ties are broken in favour of the lowest action index, so
// Strategy is deterministic and does not consume randomness.
//
// If a state is revisited before the goal is reached, the action values
// have not converged along the path and Strategy stops, returning the
// actions taken so far. Strategy therefore always returns after at
// most NumStates() actions. If start is the goal state, the returned
// slice is empty.
func (td *TD) Strategy(start int) []int {
	goal := td.env.Goal()
	visited := make([]bool, td.env.NumStates())

	actions := make([]int, 0)
	for state := start; !visited[state] && state != goal; {
		visited[state] = true
		action := td.GreedyAction(state)

		actions = append(actions, action)
		state = td.env.Next(state, action)
	}

	return actions
}
