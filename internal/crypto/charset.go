package crypto

import (
	"fmt"
	"strings"
)

// CharacterClass is a category of candidate characters.
type CharacterClass int

const (
	Lower CharacterClass = iota
	Upper
	Digits
	Symbols
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>?/|~"
)

// AllClasses returns every character class in display order.
func AllClasses() []CharacterClass {
	return []CharacterClass{Lower, Upper, Digits, Symbols}
}

// Pool returns the fixed set of characters for the class.
// Unknown classes have an empty pool.
func (c CharacterClass) Pool() string {
	switch c {
	case Lower:
		return lowercaseChars
	case Upper:
		return uppercaseChars
	case Digits:
		return numberChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return fmt.Sprintf("CharacterClass(%d)", int(c))
}

// Valid reports whether c is one of the known classes.
func (c CharacterClass) Valid() bool {
	return c.Pool() != ""
}

// ParseClass converts a class name such as "digits" to a CharacterClass.
func ParseClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lower", "lowercase":
		return Lower, nil
	case "upper", "uppercase":
		return Upper, nil
	case "digits", "numbers":
		return Digits, nil
	case "symbols":
		return Symbols, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ParseClasses parses a comma separated list of class names.
// Empty items are ignored and duplicates keep their first position.
func ParseClasses(list string) ([]CharacterClass, error) {
	var classes []CharacterClass
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		c, err := ParseClass(item)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return dedupe(classes), nil
}

// dedupe drops repeated classes while preserving selection order.
func dedupe(classes []CharacterClass) []CharacterClass {
	seen := make(map[CharacterClass]bool, len(classes))
	out := make([]CharacterClass, 0, len(classes))
	for _, c := range classes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
