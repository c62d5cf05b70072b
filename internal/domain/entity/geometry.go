package entity

import (
	"math"
	"strconv"
	"strings"
)

// PageSize is the extent of one visible page in layout units. Column widths,
// scroll offsets and window positions are all percentages of it.
const PageSize = 100.0

// PosInfo is a window position in page-percentage units.
type PosInfo struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SizeInfo is the pixel geometry of the host container.
type SizeInfo struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	PaddingTop    float64 `json:"padding_top"`
	PaddingBottom float64 `json:"padding_bottom"`
	PaddingLeft   float64 `json:"padding_left"`
	PaddingRight  float64 `json:"padding_right"`
}

// PosStyle is an absolute-positioning descriptor for CSS based renderers.
// The calc() expressions must stay byte compatible with existing renderers.
type PosStyle struct {
	Width    string `json:"width"`
	Height   string `json:"height"`
	Left     string `json:"left"`
	Top      string `json:"top"`
	Position string `json:"position"`
}

// Rect is a resolved pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

func newPosStyle(si SizeInfo, pos PosInfo, baseX, baseY float64) PosStyle {
	padX := jsNumber(si.PaddingLeft + si.PaddingRight)
	padY := jsNumber(si.PaddingTop + si.PaddingBottom)

	var b strings.Builder
	style := PosStyle{Position: "absolute"}

	b.WriteString("calc((100% - ")
	b.WriteString(padX)
	b.WriteString("px) * ")
	b.WriteString(jsNumber(pos.Width))
	b.WriteString(" / 100)")
	style.Width = b.String()
	b.Reset()

	b.WriteString("calc((100% - ")
	b.WriteString(padY)
	b.WriteString("px) * ")
	b.WriteString(jsNumber(pos.Height))
	b.WriteString(" / 100)")
	style.Height = b.String()
	b.Reset()

	b.WriteString("calc(")
	b.WriteString(jsNumber(si.PaddingLeft))
	b.WriteString("px + (100% - ")
	b.WriteString(padX)
	b.WriteString("px) * ")
	b.WriteString(jsNumber(pos.X - baseX))
	b.WriteString(" / 100)")
	style.Left = b.String()
	b.Reset()

	b.WriteString("calc(")
	b.WriteString(jsNumber(si.PaddingTop))
	b.WriteString("px + (100% - ")
	b.WriteString(padY)
	b.WriteString("px) * ")
	b.WriteString(jsNumber(pos.Y))
	b.WriteString(" / 100 + ")
	b.WriteString(jsNumber(baseY))
	b.WriteString("%)")
	style.Top = b.String()

	return style
}

// resolveFrame evaluates the PosStyle formulas against a container of the
// given pixel size. Percentages in the style refer to that container.
func resolveFrame(si SizeInfo, pos PosInfo, baseX, baseY, containerW, containerH float64) Rect {
	usableW := containerW - (si.PaddingLeft + si.PaddingRight)
	usableH := containerH - (si.PaddingTop + si.PaddingBottom)
	return Rect{
		X: si.PaddingLeft + usableW*(pos.X-baseX)/PageSize,
		Y: si.PaddingTop + usableH*pos.Y/PageSize + containerH*baseY/PageSize,
		W: usableW * pos.Width / PageSize,
		H: usableH * pos.Height / PageSize,
	}
}

// jsNumber formats f the way a JavaScript template literal prints a number.
func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
