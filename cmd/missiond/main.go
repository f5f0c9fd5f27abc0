package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyops/missiond/internal/application/auth"
	"github.com/skyops/missiond/internal/application/missions"
	"github.com/skyops/missiond/internal/config"
	infraauth "github.com/skyops/missiond/internal/infrastructure/auth"
	httprouter "github.com/skyops/missiond/internal/infrastructure/http"
	"github.com/skyops/missiond/internal/infrastructure/http/handlers"
	"github.com/skyops/missiond/internal/infrastructure/http/middleware"
	"github.com/skyops/missiond/internal/infrastructure/lockout"
	"github.com/skyops/missiond/internal/infrastructure/memory"
	"github.com/skyops/missiond/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		// Tokens issued with an ephemeral secret die with the process, which
		// matches the in-memory stores; production deployments set JWT_SECRET.
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			log.Fatal().Err(err).Msg("generate ephemeral JWT secret")
		}
		secret = hex.EncodeToString(raw)
		log.Warn().Msg("JWT_SECRET not set; using ephemeral secret")
	}

	userStore := memory.NewUserStore()
	missionStore := memory.NewMissionStore()
	simulationLog := memory.NewSimulationLog()
	observationLog := memory.NewObservationLog()
	lockoutStore := lockout.NewMemoryStore(cfg.Lockout.MaxAttempts, cfg.Lockout.CooldownSeconds)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer([]byte(secret), cfg.JWT.Issuer, time.Duration(cfg.JWT.AccessExpiry)*time.Second)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := mathrand.New(mathrand.NewSource(seed))
	log.Info().Int64("seed", seed).Msg("simulation rng seeded")

	registerUC := auth.NewRegisterUser(userStore, hasher)
	loginUC := auth.NewLogin(userStore, hasher, issuer, lockoutStore)
	currentUserUC := auth.NewCurrentUser(issuer, userStore)
	uploadUC := missions.NewUpload(observationLog)
	statusUC := missions.NewStatus(missionStore)
	queryUC := missions.NewQuery(missionStore)
	simulateUC := missions.NewSimulate(missionStore, simulationLog, rng)
	listRunsUC := missions.NewListRuns(simulationLog)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	missionsHandler := handlers.NewMissionsHandler(uploadUC, statusUC, queryUC, simulateUC, listRunsUC, log)
	requireAuth := middleware.NewAuthValidator(currentUserUC).Handler
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		MissionsHandler: missionsHandler,
		HealthHandler:   handlers.NewHealthHandler(),
		RequireAuth:     requireAuth,
		CORS:            corsMiddleware,
		Secure:          secureMiddleware,
		Log:             log,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
