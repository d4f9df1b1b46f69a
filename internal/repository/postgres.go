package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/limbo/agencydesk/pkg/cleanup"
)

type PoolOpts struct {
	MaxConns int32
	MinConns int32
}

// NewPool opens the pgx pool shared by every repository and registers its
// closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig, opts PoolOpts) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, errors.New("parsing postgres config error: " + err.Error())
	}
	poolCfg.MaxConns = opts.MaxConns
	poolCfg.MinConns = opts.MinConns
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging postgres error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	log.WithFields(log.Fields{
		"max_conns": opts.MaxConns,
		"min_conns": opts.MinConns,
	}).Info("connected to postgres")
	return pool, nil
}
