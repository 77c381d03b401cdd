package serialize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dshills/mazetrace/pkg/maze"
)

// Example bundles everything one line of output needs: the generated
// maze and the trace the solver produced for it.
type Example struct {
	Spec  *maze.MazeSpec
	Trace *maze.Trace
}

// Line renders one example as a single `{"text":"..."}\n` line. The
// inner token string is built first and then JSON-encoded as a whole,
// matching spec's "build the string, then escape it" ordering.
func Line(ex Example) []byte {
	text := tokenText(ex)

	encoded, _ := json.Marshal(text)
	out := make([]byte, 0, len(encoded)+len(`{"text":}`)+1)
	out = append(out, `{"text":`...)
	out = append(out, encoded...)
	out = append(out, '}', '\n')
	return out
}

func tokenText(ex Example) string {
	var b strings.Builder

	writeToken(&b, "query")
	writeToken(&b, "start")
	writeInt(&b, ex.Spec.Start.X)
	writeInt(&b, ex.Spec.Start.Y)
	writeToken(&b, "goal")
	writeInt(&b, ex.Spec.Goal.X)
	writeInt(&b, ex.Spec.Goal.Y)

	g := ex.Spec.Grid
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.At(x, y) == maze.Wall {
				writeToken(&b, "wall")
				writeInt(&b, x)
				writeInt(&b, y)
			}
		}
	}

	writeToken(&b, "reasoning")
	for _, ev := range ex.Trace.Reasoning {
		writeToken(&b, string(ev.Tag))
		writeInt(&b, ev.X)
		writeInt(&b, ev.Y)
		writeCost(&b, ev.G)
		writeCost(&b, ev.H)
	}

	writeToken(&b, "solution")
	for _, p := range ex.Trace.Plan {
		writeToken(&b, "plan")
		writeInt(&b, p.X)
		writeInt(&b, p.Y)
	}
	writeToken(&b, "end")

	return b.String()
}

func writeToken(b *strings.Builder, tok string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(tok)
}

func writeInt(b *strings.Builder, v int) {
	writeToken(b, strconv.Itoa(v))
}

func writeCost(b *strings.Builder, v int) {
	writeToken(b, "c"+strconv.Itoa(v))
}
