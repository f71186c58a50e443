// Package integration_test общая база для интеграционных тестов репозиториев и приложения.
// При заданном POSTGRES_HOST используется внешняя база, иначе поднимается контейнер testcontainers.
package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"freight/internal/pkg/config"
	"freight/internal/pkg/postgres"
	"freight/pkg/logger/zap_adapter"
	"freight/pkg/querier"
	"freight/pkg/tx"
)

const (
	containerImage    = "postgres:16-alpine"
	containerDB       = "freight"
	containerUser     = "freight"
	containerPassword = "freight"
	startupTimeout    = 60 * time.Second
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

func setup() {
	ctx := context.Background()
	nop := zap_adapter.NewNop()

	cfg, err := databaseConfig(ctx)
	if err != nil {
		log.Fatalf("integration database: %v", err)
	}

	if err := postgres.Migrate(ctx, nop, postgres.NewDsn(cfg)); err != nil {
		log.Fatalf("integration migrations: %v", err)
	}

	pool, err := postgres.NewConnPool(ctx, nop, cfg)
	if err != nil {
		log.Fatalf("integration pool: %v", err)
	}

	poolInstance = pool
	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
}

// databaseConfig внешняя база из POSTGRES_* или свежий контейнер. Контейнер
// останавливается reaper-ом testcontainers после завершения процесса.
func databaseConfig(ctx context.Context) (*config.Database, error) {
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		return &config.Database{
			Host:     host,
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}, nil
	}

	container, err := tcpostgres.Run(ctx,
		containerImage,
		tcpostgres.WithDatabase(containerDB),
		tcpostgres.WithUsername(containerUser),
		tcpostgres.WithPassword(containerPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, err
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     containerUser,
		Password: containerPassword,
		DBName:   containerDB,
		SSLMode:  "disable",
	}, nil
}

func GetPool() *pgxpool.Pool {
	setupOnce.Do(setup)
	return poolInstance
}

func GetQuerier() *querier.Querier {
	setupOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	return tx.New(GetPool())
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE container_items, shipment_containers, containers,
			shipments, offers, order_cargo, orders, user_relations, users
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
