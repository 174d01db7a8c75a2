package models

// GeneratorPolicy configures the password generator.
type GeneratorPolicy struct {
	// Length is the number of characters to produce. Must be at least 1.
	Length int `json:"length"`

	IncludeLowercase bool `json:"include_lowercase"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeDigits    bool `json:"include_digits"`
	IncludeSymbols   bool `json:"include_symbols"`

	// ExcludeAmbiguous removes visually similar characters (i l 1 L o 0 O)
	// from every enabled pool.
	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
}

// DefaultGeneratorPolicy returns the policy used by the client UI when the
// user asks for a generated password: 16 characters, every class enabled,
// ambiguous characters excluded.
func DefaultGeneratorPolicy() GeneratorPolicy {
	return GeneratorPolicy{
		Length:           16,
		IncludeLowercase: true,
		IncludeUppercase: true,
		IncludeDigits:    true,
		IncludeSymbols:   true,
		ExcludeAmbiguous: true,
	}
}
