package handlers

import (
	"html/template"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openfrag/faceit-stats/internal/logic"
)

type Config struct {
	PlayerStats    logic.PlayerStatsService
	Logger         *zap.Logger
	DefaultRegion  string
	AllowedOrigins []string
	// RequestTimeout bounds every request end to end
	RequestTimeout time.Duration
}

type Handler struct {
	playerStats    logic.PlayerStatsService
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	templates      *template.Template
	defaultRegion  string
	allowedOrigins []string
	requestTimeout time.Duration
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = logic.DefaultRegion
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return &Handler{
		playerStats:    cfg.PlayerStats,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		templates:      templates,
		defaultRegion:  cfg.DefaultRegion,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
	}
}
