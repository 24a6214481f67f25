package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/rifc/alphabet"
	"github.com/katalvlaran/rifc/rifc"
	"github.com/katalvlaran/rifc/vault"
)

// referenceBits is the 256-bit demonstration pattern.
const referenceBits = "11011111011111110111111111111111" +
	"11101111101110111111111111111111" +
	"11111101111111111111110111111111" +
	"11111111111101111111111111111111" +
	"11111111111111111111111111111111" +
	"11111111111111011111111111111111" +
	"11111111111111111111101111111111" +
	"11111111111111111111111111111100"

// defaultDemoBits is the longest prefix the demonstration keeps coherent
// with headroom in float64.
const defaultDemoBits = 34

func storeCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("store", "encode a message into one complex coordinate")
	label := cmd.Flag("label", "label for the saved record").String()
	save := cmd.Flag("save", "save the ciphertext to the vault").Bool()
	base := cmd.Flag("base", "branch count; 0 uses the configured base or the message minimum").Int()
	msg := cmd.Arg("message", "symbols to encode").Required().String()

	return cmd, func(e *env) int {
		return e.store(*msg, *base, *label, *save)
	}
}

func (e *env) store(msg string, base int, label string, save bool) int {
	alpha, err := alphabet.New(e.cfg.Alphabet)
	if err != nil {
		return e.fail(err)
	}
	if base == 0 {
		base = e.cfg.Base
	}
	if base == 0 {
		if base, err = alpha.MinBaseFor(msg); err != nil {
			return e.fail(err)
		}
	}

	codec, err := rifc.New(alpha, e.cfg.Key.Value(), e.cfg.Origin.Value(), base, e.options())
	if err != nil {
		return e.fail(err)
	}
	z, err := codec.Store(msg)
	if err != nil {
		return e.fail(err)
	}
	count := len([]rune(msg))
	e.log.Info("stored", zap.Int("base", base), zap.Int("count", count))

	fmt.Fprintf(e.out, "re     %s\nim     %s\nbase   %d\ncount  %d\n", formatFloat(real(z)), formatFloat(imag(z)), base, count)
	if !save {
		return 0
	}

	v, err := vault.Open(e.cfg.Vault)
	if err != nil {
		return e.fail(err)
	}
	defer v.Close()
	rec, err := v.Put(context.Background(), vault.Record{
		Label:    label,
		Real:     real(z),
		Imag:     imag(z),
		Base:     base,
		Count:    count,
		Alphabet: alpha.String(),
	})
	if err != nil {
		return e.fail(err)
	}
	fmt.Fprintf(e.out, "id     %s\n", rec.ID)

	return 0
}

func loadCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("load", "decode a coordinate back into its message")
	re := cmd.Flag("re", "real part of the coordinate").Float64()
	im := cmd.Flag("im", "imaginary part of the coordinate").Float64()
	base := cmd.Flag("base", "branch count used by store").Int()
	count := cmd.Flag("count", "number of symbols; required with --re/--im").Default("-1").Int()
	id := cmd.Flag("id", "vault record ID").String()
	label := cmd.Flag("label", "newest vault record with this label").String()

	return cmd, func(e *env) int {
		if *id != "" || *label != "" {
			return e.loadRecord(*id, *label)
		}
		b := *base
		if b == 0 {
			b = e.cfg.Base
		}
		if b == 0 {
			return e.fail(errors.New("load: --base is required without a configured base"))
		}

		if *count < 0 {
			return e.fail(errors.New("load: --count is required with --re/--im"))
		}

		return e.load(complex(*re, *im), b, *count, e.cfg.Alphabet)
	}
}

func (e *env) loadRecord(id, label string) int {
	v, err := vault.Open(e.cfg.Vault)
	if err != nil {
		return e.fail(err)
	}
	defer v.Close()

	rec, err := lookup(v, id, label)
	if err != nil {
		return e.fail(err)
	}

	return e.load(rec.Encoded(), rec.Base, rec.Count, rec.Alphabet)
}

func (e *env) load(encoded complex128, base, count int, symbols string) int {
	alpha, err := alphabet.New(symbols)
	if err != nil {
		return e.fail(err)
	}
	msg, err := rifc.Load(alpha, e.cfg.Origin.Value(), e.cfg.Key.Value(), encoded, base, count, e.options())
	if err != nil {
		return e.fail(err)
	}
	fmt.Fprintln(e.out, msg)

	return 0
}

func demoCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("demo", "store and load the reference bit pattern and check it survived")
	bits := cmd.Flag("bits", "number of reference bits to use (1-256)").Default(strconv.Itoa(defaultDemoBits)).Int()

	return cmd, func(e *env) int {
		return e.demo(*bits)
	}
}

func (e *env) demo(bits int) int {
	if bits < 1 || bits > len(referenceBits) {
		return e.fail(errors.Errorf("demo: --bits %d outside 1..%d", bits, len(referenceBits)))
	}
	msg := referenceBits[:bits]

	codec, err := rifc.New(alphabet.Binary(), e.cfg.Key.Value(), e.cfg.Origin.Value(), 2, e.options())
	if err != nil {
		return e.fail(err)
	}
	fmt.Fprintf(e.out, "stored  %s\n", msg)

	z, err := codec.Store(msg)
	if err != nil {
		return e.fail(err)
	}
	fmt.Fprintf(e.out, "encoded %s\n", strconv.FormatComplex(z, 'g', 17, 128))

	loaded, err := codec.Load(z, bits)
	if err != nil {
		fmt.Fprintf(e.errOut, "rifc: %v\n", err)
	}
	fmt.Fprintf(e.out, "loaded  %s\n", loaded)

	if err != nil || loaded != msg {
		fmt.Fprintln(e.out, "DATA CORRUPTED")
		return 1
	}
	fmt.Fprintln(e.out, "DATA IS COHERENT")

	return 0
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 17, 64)
}
