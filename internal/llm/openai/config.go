package openai

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the OpenAI client. The API key is injected by the composition
// root; this package never reads the environment.
type Config struct {
	APIKey      string
	BaseURL     string // default https://api.openai.com/v1
	Model       string // e.g. "gpt-4o-mini"
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
