package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int
	Count          int
	Uppercase      *bool
	Lowercase      *bool
	Digits         *bool
	Symbols        *bool
	AllowAmbiguous bool
}

// GeneratedPassword is a single generation result. Immutable once produced.
type GeneratedPassword struct {
	Value       string
	EntropyBits float64
}
