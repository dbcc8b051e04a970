// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audnote"
	"github.com/ik5/audnote/internal/server"
)

const shutdownGrace = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		conf    string
		origins []string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Serve conversions over HTTP.

  POST /convert?format=wav&writer=midi&filters=seconds,min_duration
  GET  /writers
  GET  /formats

Query parameters use the keys of the configuration file. --conf sets the
defaults every request starts from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := audnote.DefaultConfig()
			if conf != "" {
				var opts options
				if err := loadConf(conf, &opts); err != nil {
					return err
				}
				var err error
				if base, err = opts.Apply(base); err != nil {
					return err
				}
				if err := base.Validate(); err != nil {
					return err
				}
			}

			srv := server.New(server.Options{
				Base:           base,
				MaxBody:        maxBody,
				AllowedOrigins: origins,
				Logger:         a.log,
			})

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}
			return a.serve(cmd.Context(), ln, srv.Handler())
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8080", "listen address")
	f.StringVarP(&conf, "conf", "c", "", "JSON configuration file with the default analysis settings")
	f.StringSliceVar(&origins, "origins", nil, "allowed CORS origins (default any)")
	f.Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "largest accepted upload in bytes")
	return cmd
}

// serve runs until ctx is canceled, then drains open requests.
func (a *app) serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	hs := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(a.log),
	}

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()
	a.log.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info("stopped")
	return nil
}
