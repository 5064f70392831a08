// Package presentation holds the pure view helpers of the catalog front-end: render mode
// selection from the viewport, the injectable theme and price formatting.
package presentation

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
)

// RenderMode selects how the product collection is drawn.
type RenderMode string

const (
	ModeTable RenderMode = "table"
	ModeCards RenderMode = "cards"
)

// DefaultMediumBreakpoint is the viewport width, in CSS pixels, where the table takes over from cards.
const DefaultMediumBreakpoint = 900

// Breakpoints configures render mode selection.
type Breakpoints struct {
	Medium int
}

// DefaultBreakpoints returns the standard breakpoints.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Medium: DefaultMediumBreakpoint}
}

// ModeFor maps an observed viewport width to a render mode. Narrow viewports get cards;
// wide or unknown (non-positive) widths get the table.
func ModeFor(width int, bp Breakpoints) RenderMode {
	if width > 0 && width < bp.Medium {
		return ModeCards
	}
	return ModeTable
}

const (
	// ViewportParam is the query parameter and cookie carrying the client's viewport width.
	ViewportParam = "vw"
	// ViewportHintHeader is the client hint header carrying the viewport width.
	ViewportHintHeader = "Sec-CH-Viewport-Width"
)

// ViewportWidth extracts the viewport width a request reports, checking the query
// parameter, then the cookie, then the client hint header. It returns 0 when unknown.
func ViewportWidth(r *http.Request) int {
	if w := parseWidth(r.URL.Query().Get(ViewportParam)); w > 0 {
		return w
	}
	if c, err := r.Cookie(ViewportParam); err == nil {
		if w := parseWidth(c.Value); w > 0 {
			return w
		}
	}
	return parseWidth(r.Header.Get(ViewportHintHeader))
}

func parseWidth(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(f)
}

// FormatPrice renders a price in reais with two decimal places.
func FormatPrice(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
