package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/Astemirdum/library-portal/pkg/logger"
	"github.com/Astemirdum/library-portal/pkg/postgres"
	"github.com/Astemirdum/library-portal/portal/config"
	"github.com/Astemirdum/library-portal/portal/internal/handler"
	"github.com/Astemirdum/library-portal/portal/internal/repository"
	"github.com/Astemirdum/library-portal/portal/internal/server"
	"github.com/Astemirdum/library-portal/portal/internal/service"
	"github.com/Astemirdum/library-portal/portal/migrations"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "portal")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	events := handler.EventLog(handler.NewNopEventLog())
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		events = handler.NewEventLog(producer, kafka.CirculationTopic)
	}

	h := handler.New(svc, events, cfg.Session.Secret, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server run", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
