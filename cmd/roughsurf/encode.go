// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/roughsurf/codec"
	"github.com/katalvlaran/roughsurf/encode"
	"github.com/katalvlaran/roughsurf/surface"
)

// readFields loads token surfaces from path.
func readFields(path string) ([]*surface.HeightField, error) {
	r, err := input(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return codec.ReadTokens(r)
}

func runEncode(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("encode")
	in := fs.String("in", "", "token file (- = stdin)")
	spaces := fs.Int("z", a.settings.Encoder.Spaces, "bucket count (1..52)")
	scale := fs.Int("scale", a.settings.Encoder.Scale, "decimal exponent applied before the simple method")
	method := fs.String("method", a.settings.Encoder.Method, "simple|minmax|minmaxrms")
	out := fs.String("out", "-", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: encode needs -in", errUsage)
	}

	m, err := encode.ParseMethod(*method)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	enc, err := encode.NewEncoder(*spaces, *scale, m)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	fields, err := readFields(*in)
	if err != nil {
		return err
	}
	encoded, err := enc.EncodeAll(fields)
	if err != nil {
		return err
	}

	return a.writeTo(*out, func(w io.Writer) error { return encode.Write(w, encoded...) })
}
