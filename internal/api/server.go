package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/orbit-api/internal/api/handler"
	"github.com/vfg2006/orbit-api/internal/api/handler/router"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/usecases/authenticating"
	"github.com/vfg2006/orbit-api/internal/usecases/clienting"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	"github.com/vfg2006/orbit-api/internal/usecases/projecting"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os usecases expostos pela API
type Services struct {
	DB            handler.Pinger
	Authenticator authenticating.Authenticator
	Clients       clienting.ClientService
	Projects      projecting.ProjectService
	Invoices      invoicing.InvoiceService
	TimeTracker   timetracking.TimeTracker
	Dashboard     dashboarding.Dashboarder
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.Max)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, limiter.Middleware(cfg.RateLimit.Enabled))...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Clients(services.Clients)...),
		router.WithRoutes(handler.Projects(services.Projects)...),
		router.WithRoutes(handler.Invoices(services.Invoices)...),
		router.WithRoutes(handler.TimeEntries(services.TimeTracker)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.CORS.TrustedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
