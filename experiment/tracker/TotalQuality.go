package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// TotalQuality tracks and saves the total quality of each episode in an
// experiment. The total quality of an episode is the sum of the updated
// action values over all steps of the episode, and flattens out as the
// action values converge.
type TotalQuality struct {
	lastEpisode int
	totals      []float64
	filename    string
}

// NewTotalQuality creates and returns a new *TotalQuality Tracker which
// saves its data to filename
func NewTotalQuality(filename string) *TotalQuality {
	return &TotalQuality{
		lastEpisode: -1,
		totals:      make([]float64, 0),
		filename:    filename,
	}
}

// Track tracks the total quality of an episode.
//
// Track panics if it is called for non-sequential episodes
func (t *TotalQuality) Track(episode int, totalQuality float64) {
	if t.lastEpisode+1 != episode {
		panic(fmt.Sprintf("track: last two episodes tracked are not "+
			"sequential: episode %v --> episode %v were tracked",
			t.lastEpisode, episode))
	}

	t.totals = append(t.totals, totalQuality)
	t.lastEpisode = episode
}

// Data returns a copy of the tracked total qualities
func (t *TotalQuality) Data() []float64 {
	data := make([]float64, len(t.totals))
	copy(data, t.totals)
	return data
}

// MovingMean returns the mean total quality over each window of window
// episodes ending at each episode. The first window-1 means are taken
// over all episodes seen so far.
func (t *TotalQuality) MovingMean(window int) []float64 {
	if window <= 0 {
		panic(fmt.Sprintf("movingMean: window %d must be positive", window))
	}

	means := make([]float64, len(t.totals))
	for i := range t.totals {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		means[i] = stat.Mean(t.totals[start:i+1], nil)
	}
	return means
}

// Save saves the data tracked by the TotalQuality Tracker to disk.
func (t *TotalQuality) Save() error {
	if err := saveData(t.filename, t.totals); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}
