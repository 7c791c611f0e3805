package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"vocprez/internal/platform/config"
	"vocprez/internal/platform/httpserver"
	"vocprez/internal/vocab/handler"
)

const shutdownTimeout = 10 * time.Second

// main wires the commands; each one builds its dependencies from the
// environment through newApp.
func main() {
	root := &cobra.Command{
		Use:          "vocprez",
		Short:        "SKOS vocabulary server with profile-aware content negotiation",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), cacheCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		addr string
		warm bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the vocabulary over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.serve(ctx, warm)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides VOCPREZ_ADDR)")
	cmd.Flags().BoolVar(&warm, "warm", true, "fill empty list cache slots at start up")
	return cmd
}

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the collection and concept-scheme list cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear [collections|conceptschemes|all]",
		Short: "Drop cached lists so the next request refills them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "all"
			if len(args) == 1 {
				name = args[0]
			}
			a, err := newApp(cmd.Context(), config.FromEnv())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.clearCache(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", name)
			return nil
		},
	}

	warmCmd := &cobra.Command{
		Use:   "warm",
		Short: "Fill every empty list cache slot from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), config.FromEnv())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.lists.Warm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "list cache warm")
			return nil
		},
	}

	cmd.AddCommand(clearCmd, warmCmd)
	return cmd
}

func (a *app) serve(ctx context.Context, warm bool) error {
	opts := []handler.Option{
		handler.WithLatencyObserver(a.platformMetrics),
		handler.WithAdminToken(a.cfg.AdminAPIToken),
	}
	for name, check := range a.checks {
		opts = append(opts, handler.WithHealthCheck(name, check))
	}
	h, err := handler.New(a.service, a.site(), a.logger, opts...)
	if err != nil {
		return err
	}
	router := chi.NewRouter()
	h.Register(router)

	if warm {
		go func() {
			if err := a.lists.Warm(context.WithoutCancel(ctx)); err != nil {
				a.logger.WarnContext(ctx, "list cache warm-up failed", "error", err)
			}
		}()
	}

	srv := httpserver.New(a.cfg.Addr, router, a.cfg.SPARQL.ConstructTimeout+30*time.Second)
	errCh := make(chan error, 1)
	go func() {
		a.logger.InfoContext(ctx, "starting vocprez",
			"addr", a.cfg.Addr,
			"sparql_endpoint", a.cfg.SPARQL.Endpoint,
			"cache_backend", a.cfg.Cache.Backend,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
