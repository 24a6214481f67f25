// Package config loads the rifc command-line configuration from TOML.
//
// The file never holds ciphertexts. It holds the secret key and origin
// together with the public parameters (alphabet, base, tolerance) the
// codec needs, so it should be kept private.
package config

import (
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rifc/alphabet"
	"github.com/katalvlaran/rifc/rifc"
)

var (
	// ErrUnknownKey is returned when the file carries keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// DefaultKey is the Julia-set parameter used when none is configured.
const DefaultKey = complex(-0.75, 0.09)

// Config is the effective CLI configuration.
type Config struct {
	Key      Complex `toml:"key"`
	Origin   Complex `toml:"origin"`
	Base     int     `toml:"base"` // 0 derives the base from each message
	Epsilon  float64 `toml:"epsilon"`
	Alphabet string  `toml:"alphabet"`
	Vault    string  `toml:"vault"`
	LogLevel string  `toml:"log_level"`
}

// Default returns the configuration of the reference demonstration.
func Default() Config {
	return Config{
		Key:      NewComplex(DefaultKey),
		Origin:   Complex{},
		Base:     0,
		Epsilon:  rifc.DefaultEpsilon,
		Alphabet: alphabet.HexSymbols,
		Vault:    "rifc.db",
		LogLevel: "info",
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrapf(ErrUnknownKey, "%s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, nil
}

// Validate checks every field that the codec or the logger would reject later.
func (c Config) Validate() error {
	switch {
	case !finite(c.Key.Value()):
		return errors.Wrap(ErrInvalid, "key must be finite")
	case !finite(c.Origin.Value()):
		return errors.Wrap(ErrInvalid, "origin must be finite")
	case c.Base < 0 || c.Base == 1:
		return errors.Wrapf(ErrInvalid, "base %d: want 0 or >= %d", c.Base, alphabet.MinBase)
	case c.Epsilon <= 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0):
		return errors.Wrapf(ErrInvalid, "epsilon %g: want finite > 0", c.Epsilon)
	case c.Alphabet == "":
		return errors.Wrap(ErrInvalid, "alphabet is empty")
	}
	if _, err := alphabet.New(c.Alphabet); err != nil {
		return errors.Wrapf(ErrInvalid, "alphabet: %v", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}

	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// Complex is a complex number written as "re+imi" in TOML and on the
// command line.
type Complex struct {
	Re, Im float64
}

// NewComplex converts z.
func NewComplex(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Value returns c as a complex128.
func (c Complex) Value() complex128 {
	return complex(c.Re, c.Im)
}

// ParseComplex accepts the strconv.ParseComplex syntax, with or without
// parentheses: "-0.75+0.09i", "(1-2i)", "0.5", "3i".
func ParseComplex(s string) (complex128, error) {
	z, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, errors.Wrapf(err, "config: complex %q", s)
	}

	return z, nil
}

// String formats c without the surrounding parentheses.
func (c Complex) String() string {
	s := strconv.FormatComplex(c.Value(), 'g', -1, 128)

	return s[1 : len(s)-1]
}

// Set parses s in ParseComplex syntax into c.
func (c *Complex) Set(s string) error {
	z, err := ParseComplex(s)
	if err != nil {
		return err
	}
	*c = NewComplex(z)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Complex) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Complex) UnmarshalText(b []byte) error {
	return c.Set(string(b))
}
