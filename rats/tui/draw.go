package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen that drawing needs.
type Canvas interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	statsHeight = 5
	axisWidth   = 10
)

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	valueStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fitStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	wtStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Draw paints a full frame for s. It does not call Show.
func Draw(c Canvas, s Snapshot) {
	c.Clear()
	w, h := c.Size()
	if w < 20 || h < statsHeight+4 {
		drawText(c, 0, 0, w, "window too small", errStyle)
		return
	}

	drawText(c, 0, 0, w, "Rat Breeding Experiment", titleStyle)
	status := statusText(s)
	drawText(c, w-len(status), 0, len(status), status, statusStyle(s))

	chartTop := 2
	chartHeight := h - chartTop - statsHeight - 1
	half := w / 2
	drawChart(c, 0, chartTop, half-1, chartHeight, "Fitness", s.Fitness, fitStyle)
	drawChart(c, half, chartTop, w-half, chartHeight, "Average Weight (g)", s.MeanWeights, wtStyle)

	statsTop := h - statsHeight - 1
	left := [][2]string{
		{"Duration of Test: ", s.Elapsed.Round(time.Millisecond).String()},
		{"Number of Generations: ", humanize.Comma(int64(len(s.Generations)))},
		{"Number of Years: ", yearsText(s)},
	}
	right := [][2]string{
		{"Average Final Weight: ", finalWeightText(s)},
		{"Initial Population Fitness: ", humanize.FormatFloat("#,###.####", s.InitialFitness)},
		{"Initial Average Weight: ", humanize.FormatFloat("#,###.##", s.InitialMeanWeight)},
	}
	drawText(c, 0, statsTop, half, "Statistics", titleStyle)
	drawText(c, half, statsTop, w-half, "Statistics", titleStyle)
	for i, kv := range left {
		drawPair(c, 0, statsTop+1+i, half-1, kv[0], kv[1])
	}
	for i, kv := range right {
		drawPair(c, half, statsTop+1+i, w-half, kv[0], kv[1])
	}

	if s.Err != nil {
		drawText(c, 0, h-1, w, "error: "+s.Err.Error(), errStyle)
	} else {
		drawText(c, 0, h-1, w, "q: quit", labelStyle)
	}
}

func statusText(s Snapshot) string {
	switch {
	case s.Err != nil:
		return "failed"
	case s.Result != nil:
		return s.Result.Outcome.String()
	case s.Running:
		return "running"
	default:
		return "waiting"
	}
}

func statusStyle(s Snapshot) tcell.Style {
	if s.Err != nil {
		return errStyle
	}
	return valueStyle
}

func yearsText(s Snapshot) string {
	if s.Result != nil {
		return humanize.FormatFloat("#,###.#", s.Result.Years)
	}
	return "-"
}

func finalWeightText(s Snapshot) string {
	if s.Result != nil {
		return humanize.FormatFloat("#,###.##", s.Result.FinalMeanWeight())
	}
	if n := len(s.MeanWeights); n > 0 {
		return humanize.FormatFloat("#,###.", s.MeanWeights[n-1])
	}
	return "-"
}

func drawPair(c Canvas, x, y, width int, label, value string) {
	drawText(c, x, y, width, label, labelStyle)
	drawText(c, x+len(label), y, width-len(label), value, valueStyle)
}

// drawText writes s starting at (x, y), clipped to width cells.
func drawText(c Canvas, x, y, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		if col >= width {
			return
		}
		c.SetContent(x+col, y, r, nil, style)
		col++
	}
}

// drawChart plots values as one point per column, sampling when there are
// more values than columns. The y axis spans the value range.
func drawChart(c Canvas, x, y, width, height int, title string, values []float64, style tcell.Style) {
	drawText(c, x, y, width, title, titleStyle)
	plotTop := y + 1
	plotHeight := height - 1
	plotLeft := x + axisWidth
	plotWidth := width - axisWidth
	if plotHeight < 2 || plotWidth < 2 {
		return
	}

	for row := 0; row < plotHeight; row++ {
		c.SetContent(plotLeft-1, plotTop+row, '│', nil, labelStyle)
	}
	if len(values) == 0 {
		drawText(c, plotLeft+1, plotTop+plotHeight/2, plotWidth-1, "no data", labelStyle)
		return
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	drawText(c, x, plotTop, axisWidth-1, axisLabel(hi), labelStyle)
	drawText(c, x, plotTop+plotHeight-1, axisWidth-1, axisLabel(lo), labelStyle)

	for col := 0; col < plotWidth; col++ {
		idx := col
		if len(values) > plotWidth {
			idx = col * len(values) / plotWidth
		}
		if idx >= len(values) {
			break
		}
		row := plotHeight / 2
		if hi > lo {
			row = plotHeight - 1 - int(math.Round((values[idx]-lo)/(hi-lo)*float64(plotHeight-1)))
		}
		c.SetContent(plotLeft+col, plotTop+row, '•', nil, style)
	}
}

func axisLabel(v float64) string {
	if math.Abs(v) < 10 {
		return fmt.Sprintf("%.3f", v)
	}
	return humanize.Comma(int64(v))
}
