// Package charset defines the character classes passwords are drawn from.
package charset

import "strings"

// Character class alphabets.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{}|;:,.<>?/"
)

// Class identifies one of the four character classes.
type Class int

const (
	ClassUppercase Class = iota
	ClassLowercase
	ClassNumbers
	ClassSymbols
)

// All lists the classes in alphabet order.
var All = []Class{ClassUppercase, ClassLowercase, ClassNumbers, ClassSymbols}

// Chars returns the alphabet of the class.
func (c Class) Chars() string {
	switch c {
	case ClassUppercase:
		return Uppercase
	case ClassLowercase:
		return Lowercase
	case ClassNumbers:
		return Digits
	case ClassSymbols:
		return Symbols
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case ClassUppercase:
		return "uppercase"
	case ClassLowercase:
		return "lowercase"
	case ClassNumbers:
		return "numbers"
	case ClassSymbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// Alphabet concatenates the selected classes. Order follows All regardless of argument order.
func Alphabet(classes ...Class) string {
	selected := make(map[Class]bool, len(classes))
	for _, c := range classes {
		selected[c] = true
	}
	var b strings.Builder
	for _, c := range All {
		if selected[c] {
			b.WriteString(c.Chars())
		}
	}
	return b.String()
}
