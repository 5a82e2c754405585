package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"payseal/internal/app"
	"payseal/internal/sandbox"
)

func main() {
	addr := strings.TrimSpace(os.Getenv("SANDBOX_LISTEN_ADDR"))
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	cfg, err := app.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	cfg.Sandbox = true
	if err := app.SetupLogger(cfg.LogLevel, cfg.LogJSON); err != nil {
		log.Fatal().Err(err).Msg("logger")
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	w, err := a.Wire()
	if err != nil {
		log.Fatal().Err(err).Msg("load keys")
	}
	if !w.Keys.HasGatewayPrivate() {
		log.Fatal().Str("keysDir", cfg.KeysDir).Msg("paytend_private.pem is required to run the sandbox")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           sandbox.New(w.Decryptor, "http://"+addr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("sandbox gateway listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
