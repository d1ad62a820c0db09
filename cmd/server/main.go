package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"attendsync/internal/attendance/metrics"
	"attendsync/internal/attendance/ports"
	"attendsync/internal/attendance/report"
	"attendsync/internal/attendance/store/accounts"
	"attendsync/internal/attendance/store/checkin"
	"attendsync/internal/attendance/store/communication"
	"attendsync/internal/attendance/store/employee"
	"attendsync/internal/attendance/store/staging"
	syncengine "attendsync/internal/attendance/sync"
	"attendsync/internal/platform/config"
	"attendsync/internal/platform/httpserver"
	"attendsync/internal/platform/lock"
	"attendsync/internal/platform/logger"
	"attendsync/internal/platform/mailer"
	"attendsync/internal/platform/queue"
	platformredis "attendsync/internal/platform/redis"
	"attendsync/internal/platform/scheduler"
	httptransport "attendsync/internal/transport/http"
	"attendsync/pkg/platform/audit"
	auditkafka "attendsync/pkg/platform/audit/kafka"
	"attendsync/pkg/platform/tx"
)

const (
	syncJobName   = "hourly-biometric-sync"
	reportJobName = "daily-exceptional-report"
	reportTimeout = 5 * time.Minute
)

// main wires dependencies and runs the HTTP server, queue worker, and
// scheduler until a shutdown signal arrives. Business logic lives in the
// internal/attendance services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error("ping database", "error", err)
		return
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		return
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var sink audit.Sink = audit.NewPostgres(db)
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := auditkafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("connect kafka", "error", err)
			return
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := publisher.Close(closeCtx); err != nil {
				log.Warn("close kafka publisher", "error", err)
			}
		}()
		sink = audit.Fanout{sink, publisher}
	}

	m := metrics.New()
	runner := tx.NewSQLRunner(db)

	var passLock ports.Locker = lock.NewMemoryLock()
	if redisClient != nil {
		passLock = lock.NewRedisLock(redisClient.Client, "attendsync:reconcile", cfg.SyncTimeout)
	}

	engine, err := syncengine.New(runner,
		staging.NewPostgres(db),
		employee.NewPostgres(db),
		checkin.NewPostgres(db),
		syncengine.WithLogger(log),
		syncengine.WithAuditSink(sink),
		syncengine.WithLocker(passLock),
		syncengine.WithMetrics(m),
	)
	if err != nil {
		log.Error("build reconciliation engine", "error", err)
		return
	}

	var mail ports.Mailer
	if cfg.SMTP.Host != "" {
		mail, err = mailer.NewSMTP(cfg.SMTP)
		if err != nil {
			log.Error("build smtp mailer", "error", err)
			return
		}
	} else {
		mail = mailer.Noop{Logger: log}
	}

	reporter, err := report.New(
		staging.NewPostgres(db),
		accounts.NewPostgres(db),
		communication.NewPostgres(db),
		mail,
		report.WithLogger(log),
		report.WithAuditSink(sink),
		report.WithRoles(cfg.ReportRoles),
		report.WithMetrics(m),
	)
	if err != nil {
		log.Error("build report service", "error", err)
		return
	}

	jobs := queue.New(cfg.QueueSize, log,
		queue.WithAuditSink(sink),
		queue.WithMetrics(m),
	)

	syncJob := func() queue.Job {
		return queue.Job{
			Name:    syncJobName,
			Timeout: cfg.SyncTimeout,
			Run: func(ctx context.Context) error {
				_, err := engine.Reconcile(ctx)
				return err
			},
		}
	}
	reportJob := func() queue.Job {
		return queue.Job{
			Name:    reportJobName,
			Timeout: reportTimeout,
			Run:     reporter.SendDaily,
		}
	}

	registry := scheduler.NewRegistry(log, sink)
	schedule := []scheduler.Job{
		{
			Name:      syncJobName,
			Schedule:  cfg.SyncSchedule,
			Enabled:   true,
			CreateLog: true,
			Run: func(context.Context) error {
				return jobs.Submit(syncJob())
			},
		},
		{
			Name:      reportJobName,
			Schedule:  cfg.ReportSchedule,
			Enabled:   true,
			CreateLog: true,
			Run: func(context.Context) error {
				return jobs.Submit(reportJob())
			},
		},
	}
	for _, job := range schedule {
		if err := registry.Register(job); err != nil {
			log.Error("register scheduled job", "job", job.Name, "error", err)
			return
		}
	}

	healthDeps := map[string]httptransport.HealthChecker{
		"postgres": httptransport.HealthFunc(db.PingContext),
	}
	if redisClient != nil {
		healthDeps["redis"] = redisClient
	}

	handler := httptransport.NewHandler(jobs, syncJob, reportJob, healthDeps, log)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting attendsync", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		if err := jobs.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		registry.Start()
		<-groupCtx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return registry.Stop(stopCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("shutdown with error", "error", err)
	}
}
