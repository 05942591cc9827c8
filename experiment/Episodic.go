package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/tdlearn/agent"
	env "github.com/samuelfneumann/tdlearn/environment"
	"github.com/samuelfneumann/tdlearn/experiment/tracker"
	"github.com/samuelfneumann/tdlearn/oracle"
)

// Episodic is an Experiment that trains an agent for a fixed number of
// episodes. After training, the agent's strategy can be evaluated
// against the shortest path through the environment.
type Episodic struct {
	env.Environment
	agent.Agent
	episodes       int
	currentEpisode int
	trackers       []tracker.Tracker
}

// NewEpisodic creates and returns a new episodic experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewEpisodic(e env.Environment, a agent.Agent, episodes int,
	t ...tracker.Tracker) *Episodic {
	return &Episodic{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (e *Episodic) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// RunEpisode runs a single training episode of the experiment and
// returns whether the episode limit has been reached
func (e *Episodic) RunEpisode() bool {
	if e.currentEpisode >= e.episodes {
		return true
	}

	total := e.Agent.Train()
	e.track(e.currentEpisode, total)
	e.currentEpisode++

	return e.currentEpisode >= e.episodes
}

// Run runs the entire experiment for all episodes. The context is
// checked between episodes; a single episode cannot be interrupted.
func (e *Episodic) Run(ctx context.Context) error {
	for ended := e.currentEpisode >= e.episodes; !ended; {
		select {
		case <-ctx.Done():
			return fmt.Errorf("run: stopped after %d episodes: %w",
				e.currentEpisode, ctx.Err())
		default:
		}
		ended = e.RunEpisode()
	}
	return nil
}

// Episodes returns the number of episodes run so far
func (e *Episodic) Episodes() int {
	return e.currentEpisode
}

// Evaluate compares the agent's strategy from start with the shortest
// path to the goal found by breadth-first search
func (e *Episodic) Evaluate(start int) (Report, error) {
	if start < 0 || start >= e.NumStates() {
		return Report{}, fmt.Errorf("evaluate: start %d not in [0, %d)",
			start, e.NumStates())
	}

	learned := NewPath(e.Environment, start, e.Strategy(start))

	shortest, err := oracle.ShortestPath(e.Environment, start)
	if err != nil {
		return Report{
			Start:     start,
			Episodes:  e.currentEpisode,
			Learned:   learned,
			Reachable: false,
		}, nil
	}

	return NewReport(start, e.currentEpisode, learned,
		NewPath(e.Environment, start, shortest)), nil
}

// Save saves all the data cached by the Trackers to disk
func (e *Episodic) Save() error {
	for _, t := range e.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track sends the total quality of an episode to each tracker
func (e *Episodic) track(episode int, totalQuality float64) {
	for _, t := range e.trackers {
		t.Track(episode, totalQuality)
	}
}
