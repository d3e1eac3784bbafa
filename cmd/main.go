package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vozurbana/backend/internal/api/handler"
	"vozurbana/backend/internal/config"
	"vozurbana/backend/internal/denuncia"
	"vozurbana/backend/internal/departamento"
	"vozurbana/backend/internal/feed"
	"vozurbana/backend/internal/notify"
	"vozurbana/backend/internal/storage"
	"vozurbana/backend/internal/usuario"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the storage layer relies on for duplicate-vote detection.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return db, rdb
}

func main() {
	log.Println("Starting VozUrbana Backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	if err := s.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database and Redis connections established, migrations complete.")

	denunciaSvc := denuncia.NewService(s)
	usuarioSvc := usuario.NewService(s, cfg.JWTSecret)
	departamentoSvc := departamento.NewService(s)

	notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("Failed to start Telegram notifier: %v", err)
	}
	if notifier != nil {
		denunciaSvc.SetNotifier(notifier)
		log.Println("Telegram alerting enabled.")
	}

	hub := feed.NewManager(s)
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(denunciaSvc, usuarioSvc, departamentoSvc, hub, cfg.JWTSecret)
	h.Register(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
