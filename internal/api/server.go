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
	"github.com/sirupsen/logrus"
	"github.com/tiempos-pupi/tiempos-api/internal/api/handler"
	"github.com/tiempos-pupi/tiempos-api/internal/api/handler/router"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/authenticating"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/recording"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	recorder   recording.Recorder
}

func New(
	config *config.Config,
	weekService weekkeeping.WeekKeeper,
	recorder recording.Recorder,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Weeks(weekService, recorder)...),
		router.WithRoutes(handler.WeekData(weekService, recorder)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
		recorder: recorder,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de la aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	// esperar las escrituras en segundo plano antes de soltar el proceso
	s.recorder.Close()

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
