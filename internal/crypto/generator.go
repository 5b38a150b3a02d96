package crypto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every validation error of the generator and
// the scorer.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrLengthTooShort     = fmt.Errorf("%w: password length must be at least 1", ErrInvalidInput)
	ErrNoCharacterTypes   = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidInput)
	ErrLengthInsufficient = fmt.Errorf("%w: password length must be at least equal to the number of selected character types", ErrInvalidInput)
	ErrUnknownClass       = fmt.Errorf("%w: unknown character class", ErrInvalidInput)
)

// Generate creates a random password of exactly length characters drawn from
// the pools of classes. Each selected class contributes at least one
// character and the result is shuffled so those characters have no fixed
// position.
func Generate(src RandomSource, length int, classes []CharacterClass) (string, error) {
	if length < 1 {
		return "", ErrLengthTooShort
	}

	classes = dedupe(classes)
	if len(classes) == 0 {
		return "", ErrNoCharacterTypes
	}
	if length < len(classes) {
		return "", ErrLengthInsufficient
	}

	// Build the union pool and collect the required sets in selection order.
	var pool strings.Builder
	requiredSets := make([]string, 0, len(classes))
	for _, c := range classes {
		if !c.Valid() {
			return "", fmt.Errorf("%w: %d", ErrUnknownClass, int(c))
		}
		pool.WriteString(c.Pool())
		requiredSets = append(requiredSets, c.Pool())
	}
	all := pool.String()

	result := make([]byte, length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(src, charset)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < length; i++ {
		ch, err := randChar(src, all)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", fmt.Errorf("shuffling password: %w", err)
	}

	return string(result), nil
}

// randChar picks a random character from charset.
func randChar(src RandomSource, charset string) (byte, error) {
	n, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle driven by src.
func shuffle(src RandomSource, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
