package tracker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart plots the total quality of each episode for one or more
// learners as a line chart on an html page. Each learner tracks its
// data through its own Series.
type Chart struct {
	filename string
	title    string
	window   int

	names  []string
	series []*TotalQuality
}

// NewChart returns a new Chart which is saved to filename. If window is
// larger than 1, the moving mean over window episodes is plotted
// instead of the raw total quality.
func NewChart(filename, title string, window int) *Chart {
	if window < 1 {
		window = 1
	}
	return &Chart{filename: filename, title: title, window: window}
}

// Series returns a Tracker which tracks the data of the line named
// name. Saving the returned Tracker does nothing; call Save on the
// Chart once all series are tracked.
func (c *Chart) Series(name string) Tracker {
	s := NewTotalQuality("")
	c.names = append(c.names, name)
	c.series = append(c.series, s)
	return series{s}
}

// series is a TotalQuality whose data is saved by a Chart
type series struct {
	*TotalQuality
}

func (series) Save() error {
	return nil
}

// Save renders the chart to its file
func (c *Chart) Save() error {
	episodes := 0
	for _, s := range c.series {
		if n := len(s.totals); n > episodes {
			episodes = n
		}
	}

	subtitle := "total quality per episode"
	if c.window > 1 {
		subtitle = fmt.Sprintf("moving mean over %d episodes", c.window)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "total quality"}),
	)

	x := make([]int, episodes)
	for i := range x {
		x[i] = i
	}
	line.SetXAxis(x)

	for i, s := range c.series {
		means := s.MovingMean(c.window)
		items := make([]opts.LineData, len(means))
		for j, mean := range means {
			items[j] = opts.LineData{Value: mean}
		}
		line.AddSeries(c.names[i], items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	if err := os.MkdirAll(filepath.Dir(c.filename), 0755); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	f, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("save: could not render chart: %v", err)
	}
	return nil
}
