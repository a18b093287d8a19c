package main

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/raghulkannan/portfolio-api/config"
	"github.com/raghulkannan/portfolio-api/internal/auth"
	"github.com/raghulkannan/portfolio-api/internal/bootstrap"
	"github.com/raghulkannan/portfolio-api/internal/mailer"
	"github.com/raghulkannan/portfolio-api/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := bootstrap.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Println("REDIS_ADDR not set, listing cache disabled")
	}

	// Config validation only permits an empty MAIL_HOST in development.
	var mail mailer.Mailer
	if cfg.Mail.Host != "" {
		mail = mailer.NewSMTP(cfg.Mail)
	} else {
		log.Println("MAIL_HOST not set, contact notifications disabled (development)")
		mail = mailer.Disabled{}
	}

	deps := &bootstrap.RouterDeps{
		ServiceName: "portfolio-api",
		Config:      cfg,
		DB:          db,
		Redis:       rdb,
		Tokens:      auth.NewTokens(cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Mailer:      mail,
		Store:       uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxSize),
	}
	r := bootstrap.BuildRouter(deps)

	sweeper := uploads.NewSweeper(deps.Store, deps.Projects)
	c := cron.New()
	if err := sweeper.Start(c); err != nil {
		log.Fatalf("sweeper: %v", err)
	}
	c.Start()
	defer c.Stop()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
