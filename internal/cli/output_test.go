package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passforge/passforge-go/internal/model"
)

func TestStrengthLabel(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{0, "weak"},
		{49.9, "weak"},
		{50, "fair"},
		{79.9, "fair"},
		{80, "strong"},
		{111.9, "strong"},
		{112, "excellent"},
		{256, "excellent"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, strengthLabel(tt.bits), "bits=%.1f", tt.bits)
	}
}

func TestAnnotateLine(t *testing.T) {
	p := model.GeneratedPassword{Value: "s3cretpass", EntropyBits: 75.2}
	line := annotateLine(p, false)

	assert.Contains(t, line, "s3cretpass")
	assert.Contains(t, line, "75.2 bits")
	assert.Contains(t, line, "fair")
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
