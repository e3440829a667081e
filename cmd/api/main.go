package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/database/postgres"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/repository"
	"github.com/tiempos-pupi/tiempos-api/internal/api"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/scheduler"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/authenticating"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/recording"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, se usa 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store := documentstore.NewPostgresStore(pgConn)
	if err := store.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Error al preparar el esquema de documentos")
	}

	weekRepo := repository.NewWeekRepository(store)
	weekDataRepo := repository.NewWeekDataRepository(store)
	userRepo := repository.NewUserRepository(store)

	authenticator := authenticating.NewService(userRepo, cfg)
	weekService := weekkeeping.NewService(weekRepo, weekDataRepo)
	recorder := recording.NewService(weekDataRepo, cfg)
	go drainOutcomes(recorder.Outcomes())

	rolloverService := scheduler.NewWeekRolloverService(weekService, cfg)
	if err := rolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de semanas")
	} else {
		logrus.Info("Agendador de semanas iniciado")
	}

	server, err := api.New(cfg, weekService, recorder, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// drainOutcomes registra el resultado de las escrituras en segundo plano.
// Termina cuando el servidor cierra el canal al apagarse.
func drainOutcomes(outcomes <-chan recording.Outcome) {
	for outcome := range outcomes {
		fields := logrus.Fields{
			"op":     outcome.Op,
			"weekId": outcome.WeekID,
			"seller": outcome.Seller,
		}
		if outcome.Err != nil {
			logrus.WithFields(fields).WithError(outcome.Err).Error("Fallo al persistir la semana")
			continue
		}
		logrus.WithFields(fields).Debug("Semana persistida")
	}
}

// configureLogger configura el formato de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida")
	return conn
}
