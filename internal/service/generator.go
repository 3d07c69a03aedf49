package service

import (
	"fmt"
	"log/slog"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	defaultLength = 16
	defaultCount  = 1
)

// ErrCountTooSmall rejects batch sizes below one.
var ErrCountTooSmall = fmt.Errorf("%w: count must be at least 1", crypto.ErrInvalidConfig)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a GeneratorService around the given generator.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate produces a batch of passwords based on the given request.
// Any failure aborts the whole batch with no partial results.
func (s *GeneratorService) Generate(req model.GenerateRequest) ([]model.GeneratedPassword, error) {
	opts := crypto.GeneratorOptions{
		Length:         req.Length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Digits:         boolOrDefault(req.Digits, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		AllowAmbiguous: req.AllowAmbiguous,
	}
	if opts.Length == 0 {
		opts.Length = defaultLength
	}

	count := req.Count
	if count == 0 {
		count = defaultCount
	}
	if count < 1 {
		return nil, ErrCountTooSmall
	}

	pool, err := crypto.BuildPool(opts)
	if err != nil {
		return nil, err
	}
	entropy := crypto.EstimateEntropy(opts.Length, len(pool))
	slog.Debug("generating passwords",
		"count", count,
		"length", opts.Length,
		"categories", len(opts.Categories()),
		"pool", len(pool),
	)

	out := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := s.gen.Generate(opts)
		if err != nil {
			return nil, err
		}
		out = append(out, model.GeneratedPassword{
			Value:       password,
			EntropyBits: entropy,
		})
	}
	return out, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
