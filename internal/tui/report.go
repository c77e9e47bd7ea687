package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

// StyleRow is one line of the style table.
type StyleRow struct {
	Name     string
	Strategy string
	Interval time.Duration
	Aliases  []string
}

func RenderStyles(rows []StyleRow) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("styles") + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-20s", r.Name)),
			dimStyle.Render(fmt.Sprintf("%-13s", r.Strategy)),
			valueStyle.Render(fmt.Sprintf("%5s", r.Interval)),
			dimStyle.Render(strings.Join(r.Aliases, ", ")),
		)
		if d, ok := Descriptions[r.Name]; ok {
			b.WriteString("    " + hintStyle.Render(d) + "\n")
		}
	}
	return b.String()
}

// BenchSummary describes an off-screen run.
type BenchSummary struct {
	Style  string
	Width  int
	Height int
	Frames int
	Mean   time.Duration
	Max    time.Duration
	Costs  []float64 // milliseconds per frame
}

func RenderBench(s BenchSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(s.Style), dimStyle.Render(fmt.Sprintf("%dx%d, %d frames", s.Width, s.Height, s.Frames)))
	fmt.Fprintf(&b, "  mean %s  max %s\n", valueStyle.Render(s.Mean.String()), valueStyle.Render(s.Max.String()))
	if len(s.Costs) > 1 {
		graph := asciigraph.Plot(s.Costs,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("frame cost (ms)"),
		)
		b.WriteString("\n" + graph + "\n")
	}
	return b.String()
}
