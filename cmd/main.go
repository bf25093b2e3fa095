package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"estateFront/internal/backend"
	"estateFront/internal/config"
	"estateFront/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Warnf("Error loading .env file: %v", err)
	}
	utils.InitLogger("estateFront")
	cfg := config.LoadConfig()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":4001"
	} else {
		port = ":" + port
	}
	if cfg.Server.Address != "" {
		port = cfg.Server.Address
	}

	addr := flag.String("addr", port, "HTTP network address")
	flag.Parse()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		utils.Logger.Fatalf("Redis not reachable at %s: %v", cfg.Redis.Addr, err)
	}

	api := backend.NewClient(&http.Client{
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, cfg.Backend.BaseURL)

	app := initializeApp(cfg, rdb, api)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:5173", "http://localhost:5174"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	utils.Logger.Infof("Starting server on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		utils.Logger.Fatal(err)
	}
}
