package service

import (
	"unicode/utf8"

	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/model"
)

// DefaultLength is used when a request leaves the length unset.
const DefaultLength = 16

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source crypto.RandomSource
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src crypto.RandomSource) *GeneratorService {
	return &GeneratorService{source: src}
}

// Source returns the random source in use.
func (s *GeneratorService) Source() crypto.RandomSource {
	return s.source
}

// Generate produces a password based on the given request and rates it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}

	var classes []crypto.CharacterClass
	for _, name := range req.Classes {
		c, err := crypto.ParseClass(name)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		classes = append(classes, c)
	}

	return s.GenerateClasses(length, classes)
}

// GenerateClasses produces a password from already parsed classes.
func (s *GeneratorService) GenerateClasses(length int, classes []crypto.CharacterClass) (model.GenerateResponse, error) {
	password, err := crypto.Generate(s.source, length, classes)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	variety := distinct(classes)
	tier, err := crypto.Score(password, variety)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   utf8.RuneCountInString(password),
		Variety:  variety,
		Strength: tier.String(),
		Level:    tier.Level(),
	}, nil
}

// distinct counts the distinct classes in the selection.
func distinct(classes []crypto.CharacterClass) int {
	seen := make(map[crypto.CharacterClass]struct{}, len(classes))
	for _, c := range classes {
		seen[c] = struct{}{}
	}
	return len(seen)
}
