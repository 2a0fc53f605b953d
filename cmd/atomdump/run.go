package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/atomset"
	"github.com/jcorbin/atomset/internal/flushio"
	"github.com/jcorbin/atomset/internal/lex"
	"github.com/jcorbin/atomset/internal/logio"
	"github.com/jcorbin/atomset/internal/panicerr"
)

// exitCode is returned by run when every failure has already been logged.
type exitCode int

func (code exitCode) Error() string { return fmt.Sprintf("exit status %d", int(code)) }

type unit struct {
	name  string
	set   *atomset.Set
	atoms []string
	err   error
}

func run(ctx context.Context, cfg *config, names []string, stdin io.Reader, stdout, stderr io.Writer) (rerr error) {
	log := logio.New(stderr)

	units := make([]unit, len(names))
	for i, name := range names {
		units[i].name = name
	}
	if len(units) == 0 {
		units = append(units, unit{name: "-"})
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.jobs)
	for i := range units {
		u := &units[i]
		eg.Go(func() error {
			u.err = panicerr.Recover(u.name, func() error {
				return u.scan(ctx, cfg, log, stdin)
			})
			if u.err != nil {
				log.Errorf("%+v", u.err)
			}
			// a failed unit does not stop the others
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	if cfg.merge {
		units = append(units, mergeUnits(cfg, log, units))
	}

	out, err := flushio.Create(cfg.output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	switch cfg.format {
	case "yaml":
		err = writeYAML(out, cfg, units)
	default:
		err = writeText(out, cfg, units)
	}
	if err != nil {
		return err
	}

	if code := log.ExitCode(); code != 0 {
		return exitCode(code)
	}
	return nil
}

func (u *unit) scan(ctx context.Context, cfg *config, log *logio.Logger, stdin io.Reader) error {
	var opts []atomset.Option
	if cfg.trace {
		opts = append(opts, atomset.WithLogf(log.Leveledf("TRACE "+u.name)))
	}
	u.set = atomset.New(opts...)

	r := stdin
	if u.name != "-" {
		f, err := os.Open(u.name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := lex.NewNamedScanner(u.name, r)
	for n := 0; sc.Scan(); n++ {
		u.set.InsertBytes(sc.Word().Text)
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	u.atoms = u.set.Export()
	return nil
}

func mergeUnits(cfg *config, log *logio.Logger, units []unit) unit {
	var opts []atomset.Option
	if cfg.trace {
		opts = append(opts, atomset.WithLogf(log.Leveledf("TRACE <merged>")))
	}
	merged := unit{name: "<merged>", set: atomset.New(opts...)}
	for _, u := range units {
		if u.err == nil {
			merged.set.Adopt(u.atoms)
		}
	}
	merged.atoms = merged.set.Export()
	return merged
}

func writeText(w io.Writer, cfg *config, units []unit) error {
	var opts []atomset.DumpOption
	if cfg.userOnly {
		opts = append(opts, atomset.DumpUser)
	}
	for _, u := range units {
		if u.err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "# Unit %v\n", u.name); err != nil {
			return err
		}
		if err := u.set.Dump(w, opts...); err != nil {
			return err
		}
	}
	return nil
}

type yamlUnit struct {
	Name     string   `yaml:"name"`
	Reserved int      `yaml:"reserved"`
	Atoms    []string `yaml:"atoms"`
}

func writeYAML(w io.Writer, cfg *config, units []unit) error {
	docs := make([]yamlUnit, 0, len(units))
	for _, u := range units {
		if u.err != nil {
			continue
		}
		doc := yamlUnit{Name: u.name, Reserved: u.set.Reserved(), Atoms: u.atoms}
		if cfg.userOnly {
			doc.Atoms = u.atoms[u.set.Reserved():]
		}
		docs = append(docs, doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
