package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	JWT        JWTConfig
	Argon2     Argon2Config
	CORS       CORSConfig
	Lockout    LockoutConfig
	Simulation SimulationConfig
	Secure     SecureConfig
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret       string
	Issuer       string
	AccessExpiry int64 // seconds
}

type Argon2Config struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LockoutConfig struct {
	MaxAttempts     int
	CooldownSeconds int
}

type SimulationConfig struct {
	Seed int64 // 0 = seed from the clock
}

type SecureConfig struct {
	IsDevelopment bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		JWT: JWTConfig{
			Secret:       getEnvOrDefault("JWT_SECRET", ""),
			Issuer:       getEnvOrDefault("JWT_ISSUER", "missiond"),
			AccessExpiry: viper.GetInt64("JWT_ACCESS_EXPIRY"),
		},
		Argon2: Argon2Config{
			Memory:      uint32(viper.GetInt("ARGON2_MEMORY")),
			Iterations:  uint32(viper.GetInt("ARGON2_ITERATIONS")),
			Parallelism: uint8(viper.GetInt("ARGON2_PARALLELISM")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Lockout: LockoutConfig{
			MaxAttempts:     viper.GetInt("LOCKOUT_MAX_ATTEMPTS"),
			CooldownSeconds: viper.GetInt("LOCKOUT_COOLDOWN_SECONDS"),
		},
		Simulation: SimulationConfig{
			Seed: viper.GetInt64("SIM_SEED"),
		},
		Secure: SecureConfig{
			IsDevelopment: viper.GetBool("DEV_MODE"),
		},
	}
	if cfg.JWT.AccessExpiry <= 0 {
		cfg.JWT.AccessExpiry = 86400 // 24h
	}
	if cfg.Argon2.Memory == 0 {
		cfg.Argon2.Memory = 64 * 1024
	}
	if cfg.Argon2.Iterations == 0 {
		cfg.Argon2.Iterations = 3
	}
	if cfg.Argon2.Parallelism == 0 {
		cfg.Argon2.Parallelism = 2
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
