// Package renderdebug draws one maze + solved plan to an SVG file for
// eyeballing a new generator. It is reachable only from the CLI's
// --debug-svg flag and never participates in the deterministic token
// stream; see the teacher's pkg/export/svg.go for the drawing style this
// adapts from room-graph nodes/edges to a wall-grid + path.
package renderdebug

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/mazetrace/pkg/maze"
)

const (
	cellPx   = 20
	margin   = 20
	headerPx = 40
)

// Options configures the single-maze SVG render.
type Options struct {
	Title         string
	ShowReasoning bool
}

// DefaultOptions returns sensible render defaults.
func DefaultOptions() Options {
	return Options{Title: "maze debug render", ShowReasoning: true}
}

// Render draws spec's wall grid, trace's reasoning order as a heatmap,
// and the final plan, returning the SVG document as bytes.
func Render(spec *maze.MazeSpec, trace *maze.Trace, opts Options) []byte {
	g := spec.Grid
	width := g.Cols*cellPx + 2*margin
	height := g.Rows*cellPx + 2*margin + headerPx

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 25, opts.Title, "text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	drawWalls(canvas, g)
	if opts.ShowReasoning && trace != nil {
		drawReasoningHeatmap(canvas, trace)
	}
	if trace != nil {
		drawPlan(canvas, trace.Plan)
	}
	drawEndpoints(canvas, spec)

	canvas.End()
	return buf.Bytes()
}

// SaveToFile renders spec+trace and writes the SVG to path.
func SaveToFile(spec *maze.MazeSpec, trace *maze.Trace, opts Options, path string) error {
	data := Render(spec, trace, opts)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing debug SVG %q: %w", path, err)
	}
	return nil
}

func cellOrigin(x, y int) (int, int) {
	return margin + x*cellPx, margin + headerPx + y*cellPx
}

func drawWalls(canvas *svg.SVG, g *maze.Grid) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			ox, oy := cellOrigin(x, y)
			color := "#0f1222"
			if g.At(x, y) == maze.Passage {
				color = "#2d3748"
			}
			canvas.Rect(ox, oy, cellPx, cellPx, fmt.Sprintf("fill:%s;stroke:#1a1a2e;stroke-width:1", color))
		}
	}
}

// drawReasoningHeatmap colors each cell by how early in emission order it
// was closed, from blue (early) to red (late) — a quick visual read on
// how much of the grid the solver explored before reaching the goal.
func drawReasoningHeatmap(canvas *svg.SVG, trace *maze.Trace) {
	closes := make([]maze.ReasoningEvent, 0, len(trace.Reasoning))
	for _, ev := range trace.Reasoning {
		if ev.Tag == maze.EventClose {
			closes = append(closes, ev)
		}
	}
	if len(closes) == 0 {
		return
	}

	for i, ev := range closes {
		frac := float64(i) / float64(len(closes))
		ox, oy := cellOrigin(ev.X, ev.Y)
		canvas.Rect(ox+2, oy+2, cellPx-4, cellPx-4, fmt.Sprintf("fill:%s;opacity:0.55", heatColor(frac)))
	}
}

func heatColor(frac float64) string {
	switch {
	case frac < 0.25:
		return "#3b82f6"
	case frac < 0.5:
		return "#10b981"
	case frac < 0.75:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

func drawPlan(canvas *svg.SVG, plan []maze.Point) {
	if len(plan) < 2 {
		return
	}
	xs := make([]int, len(plan))
	ys := make([]int, len(plan))
	for i, p := range plan {
		ox, oy := cellOrigin(p.X, p.Y)
		xs[i] = ox + cellPx/2
		ys[i] = oy + cellPx/2
	}
	canvas.Polyline(xs, ys, "fill:none;stroke:#ffd700;stroke-width:3;opacity:0.9")
}

func drawEndpoints(canvas *svg.SVG, spec *maze.MazeSpec) {
	sx, sy := cellOrigin(spec.Start.X, spec.Start.Y)
	gx, gy := cellOrigin(spec.Goal.X, spec.Goal.Y)
	canvas.Circle(sx+cellPx/2, sy+cellPx/2, cellPx/3, "fill:#48bb78;stroke:#fff;stroke-width:1")
	canvas.Circle(gx+cellPx/2, gy+cellPx/2, cellPx/3, "fill:#f56565;stroke:#fff;stroke-width:1")
}
