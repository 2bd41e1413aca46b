package render

import "github.com/pawdesk/booking-widget/internal/apiclient"

// Theme is the resolved appearance of the widget.
type Theme struct {
	PrimaryColor string
	TextColor    string
	FontFamily   string
	BorderRadius string
}

// DefaultTheme matches the stock widget styling.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor: "#4f46e5",
		TextColor:    "#1f2937",
		FontFamily:   "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
		BorderRadius: "8px",
	}
}

// ThemeFromCustomization overlays embed-time options on the default theme.
func ThemeFromCustomization(c apiclient.Customization) Theme {
	theme := DefaultTheme()
	if c.PrimaryColor != "" {
		theme.PrimaryColor = c.PrimaryColor
	}
	if c.TextColor != "" {
		theme.TextColor = c.TextColor
	}
	if c.FontFamily != "" {
		theme.FontFamily = c.FontFamily
	}
	if c.BorderRadius != "" {
		theme.BorderRadius = c.BorderRadius
	}
	return theme
}
