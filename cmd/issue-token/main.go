package main

import (
	"flag"
	"fmt"
	"time"

	"seafood-exporter-api/internal/config"
	"seafood-exporter-api/pkg/jwt"
	"seafood-exporter-api/pkg/logger"
)

func main() {
	subject := flag.String("subject", "admin", "token subject, usually the operator's email")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	// 1. Load Env
	cfg, _, err := config.Load()
	logx.Init(logx.LoggerOpts{})
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. Sign
	token, err := jwt.GenerateToken([]byte(cfg.JWTSecret), *subject, *ttl)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to sign token")
	}

	logx.Info().Str("subject", *subject).Dur("ttl", *ttl).Msg("admin token issued")
	fmt.Println(token)
}
