package presentation_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iyhunko/product-catalog/internal/presentation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestModeFor(t *testing.T) {
	bp := presentation.DefaultBreakpoints()
	tests := []struct {
		name  string
		width int
		want  presentation.RenderMode
	}{
		{"ModeFor_Phone", 375, presentation.ModeCards},
		{"ModeFor_JustBelow", 899, presentation.ModeCards},
		{"ModeFor_AtBreakpoint", 900, presentation.ModeTable},
		{"ModeFor_Desktop", 1440, presentation.ModeTable},
		{"ModeFor_Unknown", 0, presentation.ModeTable},
		{"ModeFor_Negative", -1, presentation.ModeTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, presentation.ModeFor(tt.width, bp))
		})
	}
}

func TestModeFor_CustomBreakpoint(t *testing.T) {
	bp := presentation.Breakpoints{Medium: 600}

	assert.Equal(t, presentation.ModeTable, presentation.ModeFor(700, bp))
	assert.Equal(t, presentation.ModeCards, presentation.ModeFor(599, bp))
}

func TestViewportWidth(t *testing.T) {
	t.Run("query parameter wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?vw=412", nil)
		req.AddCookie(&http.Cookie{Name: "vw", Value: "1280"})
		req.Header.Set(presentation.ViewportHintHeader, "1920")

		assert.Equal(t, 412, presentation.ViewportWidth(req))
	})

	t.Run("cookie before client hint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "vw", Value: "1280"})
		req.Header.Set(presentation.ViewportHintHeader, "1920")

		assert.Equal(t, 1280, presentation.ViewportWidth(req))
	})

	t.Run("client hint with fractional width", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(presentation.ViewportHintHeader, "390.5")

		assert.Equal(t, 390, presentation.ViewportWidth(req))
	})

	t.Run("garbage is unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?vw=wide", nil)

		assert.Equal(t, 0, presentation.ViewportWidth(req))
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 2.50", presentation.FormatPrice(decimal.RequireFromString("2.5")))
	assert.Equal(t, "R$ 19.90", presentation.FormatPrice(decimal.RequireFromString("19.9")))
	assert.Equal(t, "R$ 0.00", presentation.FormatPrice(decimal.Zero))
}

func TestThemeCSSVars(t *testing.T) {
	css := string(presentation.DefaultTheme().CSSVars())

	assert.Contains(t, css, "--primary: #2563eb;")
	assert.Contains(t, css, "--radius: 12px;")

	custom := presentation.DefaultTheme()
	custom.Primary.Main = "#000000"
	assert.Contains(t, string(custom.CSSVars()), "--primary: #000000;")
}
