package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/api"
	"github.com/abhisek/mentorai/internal/cache"
	"github.com/abhisek/mentorai/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring and history HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		log := zerolog.Ctx(ctx).With().Str("component", "api").Logger()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		prof, err := loadProfile(ctx, s)
		if err != nil {
			return err
		}

		c, closeCache := newCache(ctx)
		defer closeCache()

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		sess := session.New(prof, nil, session.WithHistory(s.ResultRepo()))
		srv := &http.Server{
			Addr: addr,
			Handler: api.Routes(&api.Server{
				Quizzes:  cache.NewQuizRepo(s.QuizRepo(), c, cfg.CacheTTL()),
				Results:  s.ResultRepo(),
				Sessions: session.NewManager(sess),
				Logger:   log,
			}),
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(_ net.Listener) context.Context { return ctx },
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", addr).Msg("listening")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address (overrides server.addr and MENTORAI_ADDR)")
}
