package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
)

// Category identifies one class of characters a password may draw from.
type Category int

const (
	CategoryUppercase Category = iota
	CategoryLowercase
	CategoryDigits
	CategorySymbols
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// ambiguousChars are visually confusable glyphs, stripped from every
	// category unless the caller opts back in.
	ambiguousChars = "Il1O0o|`~'\""
)

var (
	// ErrInvalidConfig is the kind every configuration failure wraps.
	// Callers match it with errors.Is.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	ErrNoCategories   = fmt.Errorf("%w: at least one character category must be enabled", ErrInvalidConfig)
	ErrEmptyPool      = fmt.Errorf("%w: character pool is empty after filtering", ErrInvalidConfig)
	ErrLengthTooShort = fmt.Errorf("%w: length must be at least the number of active categories", ErrInvalidConfig)
)

func (c Category) String() string {
	switch c {
	case CategoryUppercase:
		return "uppercase"
	case CategoryLowercase:
		return "lowercase"
	case CategoryDigits:
		return "digits"
	case CategorySymbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// charset returns the category's characters, without ambiguous glyphs
// unless allowAmbiguous is set.
func (c Category) charset(allowAmbiguous bool) string {
	var chars string
	switch c {
	case CategoryUppercase:
		chars = uppercaseChars
	case CategoryLowercase:
		chars = lowercaseChars
	case CategoryDigits:
		chars = digitChars
	case CategorySymbols:
		chars = symbolChars
	}
	if allowAmbiguous {
		return chars
	}
	var sb strings.Builder
	for _, ch := range chars {
		if !strings.ContainsRune(ambiguousChars, ch) {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// GeneratorOptions configures password generation.
type GeneratorOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	AllowAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters, every category
// enabled, ambiguous characters excluded.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Categories returns the active categories in declaration order.
func (o GeneratorOptions) Categories() []Category {
	var cats []Category
	if o.Uppercase {
		cats = append(cats, CategoryUppercase)
	}
	if o.Lowercase {
		cats = append(cats, CategoryLowercase)
	}
	if o.Digits {
		cats = append(cats, CategoryDigits)
	}
	if o.Symbols {
		cats = append(cats, CategorySymbols)
	}
	return cats
}

// BuildPool assembles the full character pool for the active categories.
func BuildPool(opts GeneratorOptions) (string, error) {
	cats := opts.Categories()
	if len(cats) == 0 {
		return "", ErrNoCategories
	}

	var pool strings.Builder
	for _, c := range cats {
		set := c.charset(opts.AllowAmbiguous)
		if set == "" {
			return "", ErrEmptyPool
		}
		pool.WriteString(set)
	}
	return pool.String(), nil
}

// Generator produces passwords from an explicit random source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewWithRand returns a Generator reading randomness from r. Tests use it
// to substitute a deterministic source.
func NewWithRand(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a cryptographically secure random password based on the
// given options: one guaranteed character per active category, the rest
// drawn from the full pool, then a secure Fisher-Yates shuffle.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	cats := opts.Categories()
	pool, err := BuildPool(opts)
	if err != nil {
		return "", err
	}
	if opts.Length < len(cats) {
		return "", ErrLengthTooShort
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each active category.
	for i, c := range cats {
		ch, err := g.randChar(c.charset(opts.AllowAmbiguous))
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(cats); i < opts.Length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// EstimateEntropy returns the entropy in bits of a password of the given
// length drawn uniformly from a pool of poolSize characters.
func EstimateEntropy(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// randChar picks a random character from charset using the generator's
// random source.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using the generator's
// random source.
func (g *Generator) secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(g.rand, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
