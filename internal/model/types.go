// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/tuipass/internal/charset"
)

// Config defines generator and UI settings.
type Config struct {
	Length    int
	MinLength int
	MaxLength int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	History   bool
}

// Request returns the generation request described by the config.
func (c Config) Request() Request {
	return Request{
		Length:    c.Length,
		Uppercase: c.Uppercase,
		Lowercase: c.Lowercase,
		Numbers:   c.Numbers,
		Symbols:   c.Symbols,
	}
}

// Request describes one password generation.
type Request struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// Classes returns the selected character classes.
func (r Request) Classes() []charset.Class {
	var classes []charset.Class
	if r.Uppercase {
		classes = append(classes, charset.ClassUppercase)
	}
	if r.Lowercase {
		classes = append(classes, charset.ClassLowercase)
	}
	if r.Numbers {
		classes = append(classes, charset.ClassNumbers)
	}
	if r.Symbols {
		classes = append(classes, charset.ClassSymbols)
	}
	return classes
}

// HasClass reports whether at least one class is selected.
func (r Request) HasClass() bool {
	return r.Uppercase || r.Lowercase || r.Numbers || r.Symbols
}

// Label is the qualitative strength bucket.
type Label string

const (
	LabelWeak   Label = "Weak"
	LabelMedium Label = "Medium"
	LabelStrong Label = "Strong"
)

// Rating is the heuristic strength of a password.
// Score drives the label; BarWidth is the clamped value for display only.
type Rating struct {
	Score       int
	BarWidth    int
	Label       Label
	Color       string
	Description string
}

// CopyEvent records a copied password without its contents.
type CopyEvent struct {
	ID        int64
	CopiedAt  time.Time
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Score     int
	Label     Label
}

// HistoryFilter narrows history queries.
type HistoryFilter struct {
	Since *time.Time
	Last  int
}
