package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "stay_resolver/internal/adapters/http_server"
	"stay_resolver/internal/adapters/observability"
	"stay_resolver/internal/adapters/places"
	redisad "stay_resolver/internal/adapters/redis"
	"stay_resolver/internal/app"
	"stay_resolver/internal/shared"
	mysqlrepo "stay_resolver/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// the bridge is optional: without a provider key the resolver ranks
	// seed data only
	var bridge *app.Bridge
	if cfg.PlacesKey != "" {
		client, err := places.New(cfg.PlacesBase, cfg.PlacesKey, cfg.PlacesRPS, cfg.PlacesTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize places client")
		}
		bridge = app.NewBridge(client, client, repo, cache, cfg.GeocodeTTL)
	}

	resolver := app.NewResolver(repo, bridge, cfg.ResolveLimit)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: resolver, APIKey: cfg.APIKey})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
