package ui

import "github.com/gdamore/tcell/v2"

// Theme groups the styles the stock widgets draw with
type Theme struct {
	Border     tcell.Style
	Text       tcell.Style
	Button     tcell.Style
	ButtonFill tcell.Style

	NodeBorder tcell.Style
	NodeHover  tcell.Style
	NodeTitle  tcell.Style
	Handle     tcell.Style
	Close      tcell.Style

	Line       tcell.Style
	RubberBand tcell.Style
}

// DefaultTheme returns the stock palette
func DefaultTheme() Theme {
	border := tcell.NewRGBColor(80, 100, 140)
	text := tcell.NewRGBColor(200, 200, 200)
	accent := tcell.NewRGBColor(100, 200, 220)
	warn := tcell.NewRGBColor(255, 180, 100)
	good := tcell.NewRGBColor(80, 200, 80)
	dim := tcell.NewRGBColor(100, 100, 100)
	fill := tcell.NewRGBColor(50, 50, 60)

	return Theme{
		Border:     tcell.StyleDefault.Foreground(border),
		Text:       tcell.StyleDefault.Foreground(text),
		Button:     tcell.StyleDefault.Foreground(text).Background(fill),
		ButtonFill: tcell.StyleDefault.Background(fill),

		NodeBorder: tcell.StyleDefault.Foreground(border),
		NodeHover:  tcell.StyleDefault.Foreground(accent),
		NodeTitle:  tcell.StyleDefault.Foreground(text).Bold(true),
		Handle:     tcell.StyleDefault.Foreground(good),
		Close:      tcell.StyleDefault.Foreground(warn),

		Line:       tcell.StyleDefault.Foreground(accent),
		RubberBand: tcell.StyleDefault.Foreground(dim),
	}
}
