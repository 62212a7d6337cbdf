// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/roughsurf/similarity"
)

func runCompare(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("compare")
	in := fs.String("in", "", "token file (- = stdin)")
	window := fs.Int("window", -1, "Sakoe-Chiba half-width (-1 = unconstrained)")
	penalty := fs.Float64("penalty", 0, "slope penalty per non-diagonal step")
	out := fs.String("out", "-", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: compare needs -in", errUsage)
	}

	fields, err := readFields(*in)
	if err != nil {
		return err
	}
	opts := similarity.DefaultOptions()
	opts.Window = *window
	opts.SlopePenalty = *penalty
	dist, err := similarity.Pairwise(fields, &opts)
	if err != nil {
		return err
	}

	return a.writeTo(*out, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, row := range dist.ToRows() {
			for j, v := range row {
				if j > 0 {
					bw.WriteByte(',')
				}
				bw.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	})
}
