package visualization

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/talgya/fortune/internal/economy"
	"github.com/talgya/fortune/internal/engine"
)

// ErrNoData is returned when a figure would be empty.
var ErrNoData = errors.New("visualization: no data to plot")

// Trajectory plots one individual's capital over time as a dotted line,
// marking the steps where a lucky or unlucky event occurred.
func Trajectory(capital []float64, events []economy.Outcome, title string, style Style) (*plot.Plot, error) {
	if len(capital) == 0 {
		return nil, ErrNoData
	}
	if len(events) != len(capital) {
		return nil, fmt.Errorf("visualization: %d capital values but %d events", len(capital), len(events))
	}

	p := newPlot(title, "Time", "Capital", style)

	line := make(plotter.XYs, len(capital))
	for t, c := range capital {
		line[t] = plotter.XY{X: float64(t), Y: c}
	}
	l, err := plotter.NewLine(line)
	if err != nil {
		return nil, fmt.Errorf("capital line: %w", err)
	}
	l.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(l)

	markers := []struct {
		outcome economy.Outcome
		label   string
		color   int
	}{
		{economy.OutcomeLucky, "Lucky", 0},
		{economy.OutcomeUnlucky, "Unlucky", 3},
	}
	for _, m := range markers {
		var pts plotter.XYs
		for t, o := range events {
			if o == m.outcome {
				pts = append(pts, plotter.XY{X: float64(t), Y: capital[t]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s markers: %w", m.label, err)
		}
		sc.GlyphStyle.Color = style.color(m.color)
		sc.GlyphStyle.Radius = style.Marker
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(m.label, sc)
	}

	applyScale(p, style, capital)
	return p, nil
}

// SweepScatter plots final capital against talent, one series per event probability.
func SweepScatter(points []engine.SweepPoint, title string, style Style) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	p := newPlot(title, "Talent", "Final capital", style)
	var all []float64
	for i, sp := range points {
		sc, err := talentScatter(sp.Talent, sp.Final)
		if err != nil {
			return nil, fmt.Errorf("p_event=%v: %w", sp.PEvent, err)
		}
		sc.GlyphStyle.Color = style.color(i)
		sc.GlyphStyle.Radius = style.Point
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("p_event=%g", sp.PEvent), sc)
		all = append(all, sp.Final...)
	}

	applyScale(p, style, all)
	return p, nil
}

// GroupScatter overlays two labeled sweeps, one color per group.
func GroupScatter(a, b engine.Group, title string, style Style) (*plot.Plot, error) {
	if len(a.Points) == 0 && len(b.Points) == 0 {
		return nil, ErrNoData
	}

	p := newPlot(title, "Talent", "Final capital", style)
	var all []float64
	for gi, g := range []engine.Group{a, b} {
		var talent, final []float64
		for _, sp := range g.Points {
			talent = append(talent, sp.Talent...)
			final = append(final, sp.Final...)
		}
		if len(final) == 0 {
			continue
		}
		sc, err := talentScatter(talent, final)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Label, err)
		}
		sc.GlyphStyle.Color = style.color(gi * 3)
		sc.GlyphStyle.Radius = style.Point
		p.Add(sc)
		p.Legend.Add(g.Label, sc)
		all = append(all, final...)
	}

	applyScale(p, style, all)
	return p, nil
}

// Write renders p in the given format ("png", "svg", "pdf") to w.
func Write(p *plot.Plot, w io.Writer, format string, style Style) error {
	wt, err := p.WriterTo(style.Width, style.Height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders p to path; the format follows the file extension.
func Save(p *plot.Plot, path string, style Style) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return fmt.Errorf("visualization: %s has no file extension", path)
	}
	return p.Save(style.Width, style.Height, path)
}

func newPlot(title, xLabel, yLabel string, style Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = style.TitleSize
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Size = style.LabelSize
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Size = style.LabelSize
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func talentScatter(talent, final []float64) (*plotter.Scatter, error) {
	if len(talent) != len(final) {
		return nil, fmt.Errorf("%d talent values but %d capital values", len(talent), len(final))
	}
	pts := make(plotter.XYs, len(final))
	for i := range final {
		pts[i] = plotter.XY{X: talent[i], Y: final[i]}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	return sc, nil
}

// applyScale switches the capital axis to log scale when requested and
// every value is positive; a log axis cannot show zero or negative capital.
func applyScale(p *plot.Plot, style Style, values []float64) {
	if !style.LogScale || !allPositive(values) {
		return
	}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

func allPositive(values []float64) bool {
	for _, v := range values {
		if v <= 0 {
			return false
		}
	}
	return len(values) > 0
}
