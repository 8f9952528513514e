package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobtrail/internal/config"
	"jobtrail/internal/database"
	"jobtrail/internal/database/migration"
	dbpostgres "jobtrail/internal/database/postgres"
	"jobtrail/internal/session"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Sessions session.Store
	Logger   *log.Logger

	redisSessions *session.RedisStore
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{Config: cfg, DB: db, Logger: logger}

	// Redis-backed sessions when reachable; otherwise the process-local map.
	if rs := session.NewRedisStore(logger); rs != nil {
		c.Sessions = rs
		c.redisSessions = rs
	} else {
		c.Sessions = session.NewMemoryStore()
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redisSessions != nil {
		_ = c.redisSessions.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
