package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/panel-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/panel-admin/pkg/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verifica configuración, backend y almacén de sesiones",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "configuración: ok (backend %s, sesiones en %s)\n", cfg.Backend.BaseURL, cfg.Session.Store)
	if configOnly {
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	// Cualquier respuesta HTTP indica que el backend está en línea.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Backend.BaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := (&http.Client{Timeout: cfg.Backend.Timeout}).Do(req)
	if err != nil {
		return fmt.Errorf("backend no disponible: %w", err)
	}
	resp.Body.Close()
	fmt.Fprintf(out, "backend: ok (HTTP %d)\n", resp.StatusCode)

	store, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	if p, ok := store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("almacén de sesiones: %w", err)
		}
	}
	fmt.Fprintln(out, "almacén de sesiones: ok")
	return nil
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Borra las sesiones revocadas ya vencidas (SESSION_STORE=postgres)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Session.Store != "postgres" {
			return errors.New("purge solo aplica a SESSION_STORE=postgres; memory y redis vencen solos")
		}
		pool, err := postgres.NewPool(cmd.Context(), cfg.DB, postgres.DefaultPoolOptions)
		if err != nil {
			return err
		}
		repo := postgres.NewSessionRepository(pool)
		defer repo.Close()
		n, err := repo.PurgeExpired(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d sesiones revocadas eliminadas\n", n)
		return nil
	},
}
