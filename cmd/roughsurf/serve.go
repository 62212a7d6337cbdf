// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/katalvlaran/roughsurf/stream"
)

func runServe(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("serve")
	addr := fs.String("addr", a.settings.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	synth, err := a.settings.NewSynthesizer(a.logger)
	if err != nil {
		return err
	}
	srv := stream.NewServer(synth, a.settings.ServerOptions(a.logger)...)
	if err = srv.ListenAndServe(ctx, *addr); errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
