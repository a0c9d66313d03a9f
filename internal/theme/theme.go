package theme

import "github.com/gdamore/tcell/v2"

// RibbonColors is the color scheme for the memory ribbon views.
type RibbonColors struct {
	Background tcell.Color
	Foreground tcell.Color
	CursorBg   tcell.Color
	CursorFg   tcell.Color
	InactiveFg tcell.Color // cells of the ribbon instructions are not acting on
	Border     tcell.Color
	Title      tcell.Color
}

// CodeColors is the color scheme for the source code view.
type CodeColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HighlightBg tcell.Color
	HighlightFg tcell.Color
}

// StatusColors is the color scheme for the status bar.
type StatusColors struct {
	Foreground tcell.Color
	RunningFg  tcell.Color
	PausedFg   tcell.Color
	HaltedFg   tcell.Color
	ErroredFg  tcell.Color
}

// Theme groups the palettes for every themed component.
type Theme struct {
	Name   string
	Ribbon RibbonColors
	Code   CodeColors
	Status StatusColors
}

var current = defaultTheme()

func defaultTheme() *Theme {
	return &Theme{
		Name: "ember",
		Ribbon: RibbonColors{
			Background: tcell.ColorBlack,
			Foreground: tcell.ColorWhite,
			CursorBg:   tcell.ColorRed,
			CursorFg:   tcell.ColorWhite,
			InactiveFg: tcell.ColorGray,
			Border:     tcell.ColorRed,
			Title:      tcell.ColorRed,
		},
		Code: CodeColors{
			Background:  tcell.ColorBlack,
			Foreground:  tcell.ColorWhite,
			HighlightBg: tcell.ColorDarkRed,
			HighlightFg: tcell.ColorYellow,
		},
		Status: StatusColors{
			Foreground: tcell.ColorWhite,
			RunningFg:  tcell.ColorGreen,
			PausedFg:   tcell.ColorYellow,
			HaltedFg:   tcell.ColorBlue,
			ErroredFg:  tcell.ColorRed,
		},
	}
}

// Current returns the active theme.
func Current() *Theme {
	return current
}
