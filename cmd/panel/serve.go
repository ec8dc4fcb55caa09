package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/panel-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/panel-admin/internal/interfaces/http"
	"github.com/jhoicas/panel-admin/pkg/config"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openSessionStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("almacén de sesiones")
		return err
	}
	defer store.Close()

	api, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		OnUnauthorized: func(ctx context.Context) {
			log.Info().Str("request_id", backend.RequestIDFrom(ctx)).Msg("el backend rechazó el token (401)")
		},
	})
	if err != nil {
		return err
	}

	guard := auth.NewGuard(auth.Config{
		Secret:       cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		ExpiryMargin: cfg.Session.ExpiryMargin,
	}, store)
	authUC := auth.NewAuthUseCase(api, guard)

	clientUC := usecase.NewClientUseCase(api)
	employeeUC := usecase.NewEmployeeUseCase(api)
	vehicleUC := usecase.NewVehicleUseCase(api)
	serviceUC := usecase.NewServiceUseCase(api)
	advanceUC := usecase.NewSalaryAdvanceUseCase(api)
	conditionUC := usecase.NewContractualConditionUseCase(api)
	toiletUC := usecase.NewChemicalToiletUseCase(api)
	licenseUC := usecase.NewLicenseUseCase(api)
	userUC := usecase.NewUserUseCase(api)
	dashboardUC := usecase.NewDashboardUseCase(clientUC, employeeUC, vehicleUC, serviceUC, advanceUC, toiletUC, licenseUC)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:          cfg.App.Name,
		SwaggerFile:   cfg.App.SwaggerFile,
		CheckInterval: cfg.Session.CheckInterval,
	}, log, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		EmployeeUC:  employeeUC,
		VehicleUC:   vehicleUC,
		ServiceUC:   serviceUC,
		AdvanceUC:   advanceUC,
		ConditionUC: conditionUC,
		ToiletUC:    toiletUC,
		LicenseUC:   licenseUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		PDF:         infrapdf.NewListingGenerator(),
		Cookies: httpRouter.Cookies{
			Secure: cfg.Session.CookieSecure,
			Domain: cfg.Session.CookieDomain,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
