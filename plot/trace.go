// File: trace.go
// Role: renders one column of a parsed Series as an SVG line trace
// (x=t, y=value), grounded in vanderheijden86-beadwork's
// pkg/export/graph_snapshot.go SVG rendering via ajstarks/svgo.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
)

const (
	width    = 640
	height   = 360
	padding  = 48
	plotW    = width - 2*padding
	plotH    = height - 2*padding
	colorFg  = "#11111a"
	colorAx  = "#666666"
	colorLn  = "#2b6bf0"
	colorBg  = "#f9fafb"
	colorBox = "#dddddd"
)

// RenderTrace draws t/values as a titled line trace to w.
func RenderTrace(w io.Writer, title string, t []int, values []float64) error {
	if len(t) == 0 || len(values) == 0 {
		return fmt.Errorf("%w", ErrEmptyStream)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", colorBg))
	canvas.Text(padding, 28, title, fmt.Sprintf("fill:%s;font-size:16px;font-family:monospace;font-weight:bold", colorFg))

	canvas.Rect(padding, padding, plotW, plotH, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", colorBox))

	minV, maxV := minMax(values)
	if minV == maxV {
		minV -= 1
		maxV += 1
	}
	minT, maxT := t[0], t[len(t)-1]
	if minT == maxT {
		maxT = minT + 1
	}

	xs := make([]int, len(values))
	ys := make([]int, len(values))
	for i := range values {
		xs[i] = padding + scale(float64(t[i]-minT), float64(maxT-minT), float64(plotW))
		ys[i] = padding + plotH - scale(values[i]-minV, maxV-minV, float64(plotH))
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", colorLn))

	canvas.Text(padding, height-padding/2, fmt.Sprintf("t: %d .. %d", minT, maxT),
		fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", colorAx))
	canvas.Text(padding, padding-8, fmt.Sprintf("max %.6g", maxV),
		fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", colorAx))
	canvas.Text(padding, padding+plotH+16, fmt.Sprintf("min %.6g", minV),
		fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", colorAx))

	canvas.End()

	return nil
}

// SaveAll renders every column in s to "<dir>/<prefix>_<column>.svg",
// creating dir if needed, and returns the written paths in column order.
func SaveAll(dir, prefix string, s *Series) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("plot: creating %s: %w", dir, err)
	}

	paths := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.svg", prefix, col))
		if err := saveOne(path, col, s.T, s.Values[col]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func saveOne(path, title string, t []int, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: creating %s: %w", path, err)
	}
	defer f.Close()

	return RenderTrace(f, title, t, values)
}

func minMax(values []float64) (float64, float64) {
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return minV, maxV
}

func scale(v, span, target float64) int {
	if span == 0 {
		return 0
	}

	return int(v / span * target)
}
