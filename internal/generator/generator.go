// Package generator builds random passwords.
package generator

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/model"
)

var (
	// ErrNoCharacterClass is returned when every class is deselected.
	ErrNoCharacterClass = errors.New("please select at least one character type")
	// ErrNegativeLength is returned for a length below zero.
	ErrNegativeLength = errors.New("password length must not be negative")
)

// Generator produces random passwords from the selected character classes.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate draws req.Length characters independently and uniformly from the
// union of the selected classes.
func (g *Generator) Generate(req model.Request) (string, error) {
	if !req.HasClass() {
		return "", ErrNoCharacterClass
	}
	if req.Length < 0 {
		return "", ErrNegativeLength
	}
	alphabet := charset.Alphabet(req.Classes()...)

	var b strings.Builder
	b.Grow(req.Length)
	for i := 0; i < req.Length; i++ {
		b.WriteByte(alphabet[g.rnd.Intn(len(alphabet))])
	}
	return b.String(), nil
}

// GenerateN returns count passwords for the same request.
func (g *Generator) GenerateN(req model.Request, count int) ([]string, error) {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.Generate(req)
		if err != nil {
			return nil, err
		}
		result = append(result, pw)
	}
	return result, nil
}
