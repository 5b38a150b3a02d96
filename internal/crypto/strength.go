package crypto

import (
	"fmt"
	"unicode/utf8"
)

// Tier is a qualitative strength bucket.
type Tier int

const (
	Weak Tier = iota
	Good
	Strong
)

// MaxPoints is the highest score Points can return.
const MaxPoints = 6

var (
	ErrNegativeLength  = fmt.Errorf("%w: length must not be negative", ErrInvalidInput)
	ErrNegativeVariety = fmt.Errorf("%w: variety count must not be negative", ErrInvalidInput)
)

func (t Tier) String() string {
	switch t {
	case Weak:
		return "Weak"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Level is the short style name for the tier: weak, medium or strong.
func (t Tier) Level() string {
	switch t {
	case Good:
		return "medium"
	case Strong:
		return "strong"
	}
	return "weak"
}

// Points accumulates one point per length threshold (12, 16, 20) and one per
// variety threshold (2, 3, exactly 4).
func Points(length, variety int) int {
	score := 0

	if length >= 12 {
		score++
	}
	if length >= 16 {
		score++
	}
	if length >= 20 {
		score++
	}

	if variety >= 2 {
		score++
	}
	if variety >= 3 {
		score++
	}
	if variety == 4 {
		score++
	}

	return score
}

// TierFor maps a point score to its tier.
func TierFor(points int) Tier {
	switch {
	case points >= MaxPoints:
		return Strong
	case points >= 4:
		return Good
	}
	return Weak
}

// Score rates a password given the number of character classes it was
// generated from. Length is counted in characters, not bytes.
func Score(password string, variety int) (Tier, error) {
	return ScoreLength(utf8.RuneCountInString(password), variety)
}

// ScoreLength rates a password known only by its length.
func ScoreLength(length, variety int) (Tier, error) {
	if length < 0 {
		return Weak, ErrNegativeLength
	}
	if variety < 0 {
		return Weak, ErrNegativeVariety
	}
	return TierFor(Points(length, variety)), nil
}
