package tracker

import (
	"github.com/samuelfneumann/tdlearn/utils/progressbar"
)

// Progress displays a progress bar which advances each episode. The bar
// is redrawn every n-th episode and once more when saved.
type Progress struct {
	bar   *progressbar.ManualProgressBar
	every int
}

// NewProgress returns a new Progress tracker
func NewProgress(bar *progressbar.ManualProgressBar, every int) *Progress {
	if every <= 0 {
		every = 1
	}
	return &Progress{bar: bar, every: every}
}

// Track advances the progress bar
func (p *Progress) Track(episode int, _ float64) {
	p.bar.Increment()
	if (episode+1)%p.every == 0 {
		p.bar.Display()
	}
}

// Save draws the final progress bar
func (p *Progress) Save() error {
	return p.bar.Display()
}
