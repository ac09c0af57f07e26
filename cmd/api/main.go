package main

import (
	"context"
	"time"

	"condo-portal/internal/config"
	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"
	"condo-portal/internal/repository/redis"
	"condo-portal/internal/router"
	"condo-portal/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := pkg.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	pkg.SetJWTSecrets([]byte(cfg.AccessSecret), []byte(cfg.RefreshSecret))

	if err := postgres.InitDB(cfg.DSN()); err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}
	defer redis.Close()

	// dev-stage schema management
	if err := postgres.DB.AutoMigrate(
		&model.Community{},
		&model.User{},
		&model.Notice{},
		&model.Meeting{},
		&model.Worry{},
		&model.NoticeLike{},
		&model.WorryLike{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer = pkg.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reaper := service.NewMeetingReaper(postgres.DB, time.Duration(cfg.ReapIntervalMinutes)*time.Minute, log)
	go reaper.Run(ctx)

	r := router.InitRouter(router.Deps{
		DB:       postgres.DB,
		Log:      log,
		Producer: producer,
		Mail: pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
