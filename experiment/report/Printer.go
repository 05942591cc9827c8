// Package report prints experiment reports for people to read
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/environment/gridworld"
	"github.com/samuelfneumann/tdlearn/experiment"
)

// Printer prints Reports, optionally in colour
type Printer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewPrinter returns a new Printer writing to out. Colours should be
// disabled when out is not a terminal.
func NewPrinter(out io.Writer, colours bool) *Printer {
	return &Printer{out: out, au: aurora.NewAurora(colours)}
}

// Print prints a Report of the agent named name. If g is not nil, both
// paths are also drawn on the grid.
func (p *Printer) Print(name string, r experiment.Report,
	g *gridworld.GridWorld) {
	fmt.Fprintf(p.out, "%v after %d episodes from state %d\n",
		p.au.Bold(name), r.Episodes, r.Start)

	p.path("learned", r.Learned)
	if g != nil {
		fmt.Fprint(p.out, g.Render(r.Start, r.Learned.Actions))
	}

	if !r.Reachable {
		fmt.Fprintf(p.out, "%v\n", p.au.Yellow("goal is unreachable"))
		return
	}

	p.path("shortest", r.Shortest)
	if g != nil {
		fmt.Fprint(p.out, g.Render(r.Start, r.Shortest.Actions))
	}

	if r.Match {
		fmt.Fprintf(p.out, "%v\n", p.au.Green("MATCH"))
	} else {
		fmt.Fprintf(p.out, "%v\n", p.au.Red("MISMATCH"))
	}
}

// path prints the actions and reward of a path
func (p *Printer) path(label string, path experiment.Path) {
	goal := p.au.Green("reaches goal")
	if !path.ReachedGoal {
		goal = p.au.Red("stops at state " + fmt.Sprint(path.Final))
	}

	fmt.Fprintf(p.out, "%-9v %d steps, reward %v, %v\n", label+":",
		path.Len(), path.Reward, goal)
	fmt.Fprintf(p.out, "          %v\n", gridworld.Describe(path.Actions))
}

// Values prints a table of action values, one row per state
func (p *Printer) Values(values mat.Matrix) {
	fmt.Fprintf(p.out, "%.3f\n", mat.Formatted(values, mat.Squeeze()))
}
