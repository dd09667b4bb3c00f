package domain

import "time"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// LearningPath selects the curriculum track.
type LearningPath string

const (
	PathBeginner     LearningPath = "beginner"
	PathIntermediate LearningPath = "intermediate"
	PathAdvanced     LearningPath = "advanced"
)

// Valid reports whether the path is a known track.
func (p LearningPath) Valid() bool {
	switch p {
	case PathBeginner, PathIntermediate, PathAdvanced:
		return true
	}
	return false
}

// Settings is pure presentation configuration. The only invariant is
// enum membership for theme and font size.
type Settings struct {
	Theme         Theme  `json:"theme"`
	FontSize      string `json:"font_size"`
	BionicReading bool   `json:"bionic_reading"`
	HighContrast  bool   `json:"high_contrast"`
	DyslexiaFont  bool   `json:"dyslexia_font"`
}

var fontSizes = map[string]bool{
	"14px": true,
	"16px": true,
	"18px": true,
	"20px": true,
}

// DefaultSettings matches the defaults a fresh learner sees.
func DefaultSettings() Settings {
	return Settings{
		Theme:    ThemeDark,
		FontSize: "16px",
	}
}

// SetTheme switches the color scheme.
func (p *Progress) SetTheme(theme Theme, now time.Time) error {
	if theme != ThemeDark && theme != ThemeLight {
		return ErrUnknownTheme
	}
	p.Settings.Theme = theme
	p.UpdatedAt = now
	return nil
}

// SetFontSize switches the base font size.
func (p *Progress) SetFontSize(size string, now time.Time) error {
	if !fontSizes[size] {
		return ErrUnknownFontSize
	}
	p.Settings.FontSize = size
	p.UpdatedAt = now
	return nil
}

// SetBionicReading toggles bionic reading mode.
func (p *Progress) SetBionicReading(enabled bool, now time.Time) {
	p.Settings.BionicReading = enabled
	p.UpdatedAt = now
}

// SetHighContrast toggles high-contrast mode.
func (p *Progress) SetHighContrast(enabled bool, now time.Time) {
	p.Settings.HighContrast = enabled
	p.UpdatedAt = now
}

// SetDyslexiaFont toggles the dyslexia-friendly font.
func (p *Progress) SetDyslexiaFont(enabled bool, now time.Time) {
	p.Settings.DyslexiaFont = enabled
	p.UpdatedAt = now
}
