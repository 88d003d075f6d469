package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"pbmledger/internal/audit"
	auditkafka "pbmledger/internal/audit/kafka"
	ledgerhandler "pbmledger/internal/ledger/handler"
	ledgerservice "pbmledger/internal/ledger/service"
	ledgerstore "pbmledger/internal/ledger/store"
	"pbmledger/internal/platform/config"
	"pbmledger/internal/platform/httpserver"
	"pbmledger/internal/platform/logger"
	"pbmledger/internal/platform/metrics"
	"pbmledger/internal/platform/postgres"
	platformredis "pbmledger/internal/platform/redis"
	policyhandler "pbmledger/internal/policy/handler"
	policyservice "pbmledger/internal/policy/service"
	policystore "pbmledger/internal/policy/store"
	registryhandler "pbmledger/internal/registry/handler"
	registryservice "pbmledger/internal/registry/service"
	registrystore "pbmledger/internal/registry/store"
	"pbmledger/internal/reserve"
	"pbmledger/internal/token"
	transport "pbmledger/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("postgres migration failed", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Store selection: Postgres/Redis when configured, memory otherwise.
	var (
		typeStore    registryservice.Store
		balanceStore ledgerservice.BalanceStore
		roleStore    policyservice.RoleStore
		auditStore   audit.Store
	)
	if db != nil {
		typeStore = registrystore.NewPostgres(db)
		balanceStore = ledgerstore.NewPostgres(db)
		auditStore = audit.NewPostgresStore(db)
	} else {
		typeStore = registrystore.NewInMemory()
		balanceStore = ledgerstore.NewInMemory()
		auditStore = audit.NewInMemoryStore()
	}
	if redisClient != nil {
		roleStore = policystore.NewRedis(redisClient.Client)
	} else {
		roleStore = policystore.NewInMemory()
	}

	auditPublisher := audit.NewPublisher(auditStore, log)

	var sink audit.Sink = audit.NopSink{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := auditkafka.New(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	}
	auditWorker := audit.NewWorker(sink, auditPublisher.Inbox(), log)

	m := metrics.New()

	// The reserve adapter defaults to the in-process reserve ledger; a real
	// deployment swaps in an adapter against the institution's reserve
	// system here.
	reserveLedger := reserve.NewInMemoryLedger(reserve.Account(cfg.Owner))
	reserveAdapter := reserve.NewEscrowAdapter(reserveLedger, "pbm-escrow")

	registrySvc := registryservice.New(typeStore, auditPublisher, m, log)
	policySvc := policyservice.New(roleStore, auditPublisher, log)
	ledgerSvc := ledgerservice.New(balanceStore, registrySvc, policySvc, reserveAdapter, auditPublisher, m, log)

	tokenSvc := token.NewService(cfg.JWTSigningKey, "pbmledger")

	router := transport.NewRouter(transport.Handlers{
		Registry: registryhandler.New(registrySvc, ledgerSvc, log),
		Ledger:   ledgerhandler.New(ledgerSvc, log),
		Policy:   policyhandler.New(policySvc, log),
	}, tokenSvc, m, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting pbm ledger", "addr", cfg.Addr)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		if err := auditWorker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
