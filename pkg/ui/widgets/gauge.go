package widgets

import (
	"github.com/eidora/mythos/pkg/ui/backend"
	"github.com/eidora/mythos/pkg/ui/runtime"
)

// GaugeThreshold defines a color breakpoint in a gauge gradient.
type GaugeThreshold struct {
	Ratio float64
	Style backend.Style
}

// GaugeStyle defines the visual appearance of a gauge bar.
type GaugeStyle struct {
	FillChar   rune
	EmptyChar  rune
	Thresholds []GaugeThreshold
	EmptyStyle backend.Style
}

// DefaultGaugeStyle returns a low/mid/high gradient gauge.
func DefaultGaugeStyle(low, mid, high, empty backend.Style) GaugeStyle {
	return GaugeStyle{
		FillChar:  '█',
		EmptyChar: '░',
		Thresholds: []GaugeThreshold{
			{Ratio: 0.0, Style: low},
			{Ratio: 0.4, Style: mid},
			{Ratio: 0.75, Style: high},
		},
		EmptyStyle: empty,
	}
}

// DrawGauge renders a horizontal bar filled to ratio (0.0-1.0), with
// the fill color chosen by the gradient thresholds.
func DrawGauge(buf *runtime.Buffer, x, y, width int, ratio float64, style GaugeStyle) {
	if buf == nil || width <= 0 {
		return
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	fill := int(float64(width)*ratio + 0.5)
	if fill > width {
		fill = width
	}

	fillStyle := style.EmptyStyle
	for _, th := range style.Thresholds {
		if ratio >= th.Ratio {
			fillStyle = th.Style
		}
	}

	for i := 0; i < width; i++ {
		if i < fill {
			buf.Set(x+i, y, style.FillChar, fillStyle)
		} else {
			buf.Set(x+i, y, style.EmptyChar, style.EmptyStyle)
		}
	}
}
