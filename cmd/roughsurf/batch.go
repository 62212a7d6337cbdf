// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/roughsurf/batch"
)

// errAllFailed reports a batch in which no parameter set succeeded.
var errAllFailed = errors.New("every parameter set failed")

func runBatch(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("batch")
	in := fs.String("in", "", "parameter CSV file (- = stdin)")
	rows := fs.String("rows", a.settings.RowPolicy, "all|first")
	workers := fs.Int("workers", a.settings.Workers, "worker count (0 = GOMAXPROCS)")
	seed := fs.Int64("seed", a.settings.Seed, "base seed")
	out := fs.String("out", "-", "output file")
	format := fs.String("format", "token", "token|human")
	withRL := fs.Bool("rl-header", false, "append rL to each header")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: batch needs -in", errUsage)
	}
	policy, err := batch.ParseRowPolicy(*rows)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	r, err := input(*in)
	if err != nil {
		return err
	}
	params, err := batch.ReadParameters(r, policy, batch.WithDefaultN(a.settings.DefaultN))
	_ = r.Close()
	rejected := batch.RowErrors(err)
	if err != nil && len(rejected) == 0 {
		return err
	}
	for _, re := range rejected {
		a.logger.Error("parameter set rejected", slog.Int("row", re.Row), slog.Any("err", re.Err))
	}

	synth, err := a.settings.NewSynthesizer(a.logger)
	if err != nil {
		return err
	}
	settings := a.settings
	settings.Seed = *seed
	settings.Workers = max(*workers, 0)
	runner := batch.NewRunner(synth, settings.RunnerOptions(a.logger)...)

	fields, failed := batch.Split(runner.Run(ctx, params))
	for _, res := range failed {
		a.logger.Error("parameter set failed",
			slog.Int("index", res.Index),
			slog.String("params", res.Params.String()),
			slog.Any("err", res.Err))
	}
	a.logger.Info("batch done",
		slog.Int("ok", len(fields)),
		slog.Int("failed", len(failed)),
		slog.Int("rejected", len(rejected)))

	if err = a.writeTo(*out, func(w io.Writer) error { return writeFields(w, *format, *withRL, fields...) }); err != nil {
		return err
	}
	if bad := len(failed) + len(rejected); len(fields) == 0 && bad > 0 {
		return fmt.Errorf("%d of %d: %w", bad, len(params)+len(rejected), errAllFailed)
	}

	return nil
}
