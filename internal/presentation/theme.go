package presentation

import (
	"fmt"
	"html/template"
	"strings"
)

// Swatch is one palette entry.
type Swatch struct {
	Main  string
	Light string
	Dark  string
}

// Theme is the style configuration handed to the view layer.
type Theme struct {
	Primary       Swatch
	Secondary     Swatch
	Error         Swatch
	Success       string
	Background    string
	Paper         string
	TextPrimary   string
	TextSecondary string
	FontFamily    string
	BorderRadius  int
}

// DefaultTheme returns the catalog's stock look.
func DefaultTheme() Theme {
	return Theme{
		Primary:       Swatch{Main: "#2563eb", Light: "#3b82f6", Dark: "#1d4ed8"},
		Secondary:     Swatch{Main: "#7c3aed", Light: "#8b5cf6", Dark: "#6d28d9"},
		Error:         Swatch{Main: "#ef4444", Light: "#f87171", Dark: "#dc2626"},
		Success:       "#22c55e",
		Background:    "#f8fafc",
		Paper:         "#ffffff",
		TextPrimary:   "#1e293b",
		TextSecondary: "#64748b",
		FontFamily:    "'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif",
		BorderRadius:  12,
	}
}

// CSSVars renders the theme as CSS custom properties for a :root rule.
func (t Theme) CSSVars() template.CSS {
	vars := []struct {
		name  string
		value string
	}{
		{"primary", t.Primary.Main},
		{"primary-light", t.Primary.Light},
		{"primary-dark", t.Primary.Dark},
		{"secondary", t.Secondary.Main},
		{"secondary-light", t.Secondary.Light},
		{"secondary-dark", t.Secondary.Dark},
		{"error", t.Error.Main},
		{"error-light", t.Error.Light},
		{"error-dark", t.Error.Dark},
		{"success", t.Success},
		{"background", t.Background},
		{"paper", t.Paper},
		{"text-primary", t.TextPrimary},
		{"text-secondary", t.TextSecondary},
		{"font-family", t.FontFamily},
		{"radius", fmt.Sprintf("%dpx", t.BorderRadius)},
	}

	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "--%s: %s; ", v.name, v.value)
	}
	return template.CSS(strings.TrimSpace(b.String()))
}
