package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/klaus-0-0/vault/models"
	"github.com/sethvargo/go-diceware/diceware"
)

const (
	lowercasePool = "abcdefghijklmnopqrstuvwxyz"
	uppercasePool = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitPool     = "0123456789"
	symbolPool    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are removed from every pool when ExcludeAmbiguous is set.
	ambiguousChars = "il1Lo0O"

	defaultPassphraseSeparator = "-"
)

type generator struct {
	random io.Reader
}

// NewPasswordGenerator returns a PasswordGenerator that draws every random
// choice from crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return &generator{random: rand.Reader}
}

// Generate builds a password from the pools enabled in policy.
//
// When policy.Length is at least the number of enabled classes, the result
// holds one character of every enabled class; the remaining positions are
// drawn uniformly from the union and the whole password is shuffled.
// When it is shorter, the per-class seeds are shuffled and truncated.
func (g *generator) Generate(policy models.GeneratorPolicy) (string, error) {
	if policy.Length < 1 {
		return "", fmt.Errorf("%w: length must be at least 1", ErrInvalidPolicy)
	}

	pools := enabledPools(policy)
	if len(pools) == 0 {
		return "", fmt.Errorf("%w: no character class enabled", ErrInvalidPolicy)
	}

	password := make([]rune, 0, max(policy.Length, len(pools)))
	for _, pool := range pools {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	union := []rune(strings.Join(toStrings(pools), ""))
	for len(password) < policy.Length {
		c, err := g.pick(union)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return string(password[:policy.Length]), nil
}

// GeneratePassphrase returns words diceware words joined by separator
// ("-" when empty).
func (g *generator) GeneratePassphrase(words int, separator string) (string, error) {
	if words < 1 {
		return "", fmt.Errorf("%w: passphrase needs at least one word", ErrInvalidPolicy)
	}
	if separator == "" {
		separator = defaultPassphraseSeparator
	}

	list, err := diceware.Generate(words)
	if err != nil {
		return "", fmt.Errorf("generate passphrase: %w", err)
	}

	return strings.Join(list, separator), nil
}

func enabledPools(policy models.GeneratorPolicy) [][]rune {
	var pools [][]rune

	add := func(enabled bool, pool string) {
		if !enabled {
			return
		}
		if policy.ExcludeAmbiguous {
			pool = stripChars(pool, ambiguousChars)
		}
		if pool != "" {
			pools = append(pools, []rune(pool))
		}
	}

	add(policy.IncludeLowercase, lowercasePool)
	add(policy.IncludeUppercase, uppercasePool)
	add(policy.IncludeDigits, digitPool)
	add(policy.IncludeSymbols, symbolPool)

	return pools
}

func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

func toStrings(pools [][]rune) []string {
	out := make([]string, len(pools))
	for i, pool := range pools {
		out[i] = string(pool)
	}
	return out
}

func (g *generator) pick(pool []rune) (rune, error) {
	i, err := g.randomIndex(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func (g *generator) shuffle(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := g.randomIndex(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

func (g *generator) randomIndex(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
