package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/rifc/vault"
)

// lookup resolves a record by ID, falling back to the newest with label.
func lookup(v *vault.Vault, id, label string) (vault.Record, error) {
	ctx := context.Background()
	if id != "" {
		uid, err := uuid.Parse(id)
		if err != nil {
			return vault.Record{}, errors.Wrapf(err, "record id %q", id)
		}
		return v.Get(ctx, uid)
	}

	return v.Find(ctx, label)
}

func listCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("list", "list saved ciphertexts, newest first")
	limit := cmd.Flag("limit", "maximum number of records; 0 lists all").Default("20").Int()

	return cmd, func(e *env) int {
		v, err := vault.Open(e.cfg.Vault)
		if err != nil {
			return e.fail(err)
		}
		defer v.Close()

		recs, err := v.List(context.Background(), *limit)
		if err != nil {
			return e.fail(err)
		}
		tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLABEL\tBASE\tSYMBOLS\tSAVED")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.ID, r.Label, r.Base, humanize.Comma(int64(r.Count)), humanize.Time(r.CreatedAt))
		}
		if err = tw.Flush(); err != nil {
			return e.fail(err)
		}

		return 0
	}
}

func showCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("show", "print one saved ciphertext")
	id := cmd.Arg("id", "record ID").Required().String()

	return cmd, func(e *env) int {
		v, err := vault.Open(e.cfg.Vault)
		if err != nil {
			return e.fail(err)
		}
		defer v.Close()

		r, err := lookup(v, *id, "")
		if err != nil {
			return e.fail(err)
		}
		fmt.Fprintf(e.out, "id        %s\n", r.ID)
		fmt.Fprintf(e.out, "label     %s\n", r.Label)
		fmt.Fprintf(e.out, "re        %s\n", formatFloat(r.Real))
		fmt.Fprintf(e.out, "im        %s\n", formatFloat(r.Imag))
		fmt.Fprintf(e.out, "base      %d\n", r.Base)
		fmt.Fprintf(e.out, "count     %s\n", humanize.Comma(int64(r.Count)))
		fmt.Fprintf(e.out, "alphabet  %s\n", r.Alphabet)
		fmt.Fprintf(e.out, "saved     %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04:05 MST"), humanize.Time(r.CreatedAt))

		return 0
	}
}

func deleteCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("delete", "remove a saved ciphertext")
	id := cmd.Arg("id", "record ID").Required().String()

	return cmd, func(e *env) int {
		uid, err := uuid.Parse(*id)
		if err != nil {
			return e.fail(errors.Wrapf(err, "record id %q", *id))
		}
		v, err := vault.Open(e.cfg.Vault)
		if err != nil {
			return e.fail(err)
		}
		defer v.Close()

		if err = v.Delete(context.Background(), uid); err != nil {
			return e.fail(err)
		}
		fmt.Fprintf(e.out, "deleted %s\n", uid)

		return 0
	}
}

func configCommand(app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("config", "print the effective configuration as TOML")

	return cmd, func(e *env) int {
		if err := e.cfg.Write(e.out); err != nil {
			return e.fail(err)
		}

		return 0
	}
}

