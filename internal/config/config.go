package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress    string
	DatabaseURI   string
	TelegramToken string
	StoreName     string
	MenuPDFPath   string

	HandoffWindow       time.Duration
	IdleThreshold       time.Duration
	SweepInterval       time.Duration
	PostOrderGrace      time.Duration
	PrepNotifyDelay     time.Duration
	DispatchNotifyDelay time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultStoreName           = "Hamburgueria Premium"
	defaultMenuPDFPath         = "assets/cardapio.pdf"
	defaultHandoffWindow       = 10 * time.Minute
	defaultIdleThreshold       = 30 * time.Minute
	defaultSweepInterval       = time.Minute
	defaultPostOrderGrace      = 5 * time.Minute
	defaultPrepNotifyDelay     = 10 * time.Second
	defaultDispatchNotifyDelay = 20 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		TelegramToken:       getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		StoreName:           getString(lookup, "STORE_NAME", defaultStoreName),
		MenuPDFPath:         getString(lookup, "MENU_PDF_PATH", defaultMenuPDFPath),
		HandoffWindow:       getDuration(lookup, "HANDOFF_WINDOW", defaultHandoffWindow),
		IdleThreshold:       getDuration(lookup, "IDLE_THRESHOLD", defaultIdleThreshold),
		SweepInterval:       getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		PostOrderGrace:      getDuration(lookup, "POST_ORDER_GRACE", defaultPostOrderGrace),
		PrepNotifyDelay:     getDuration(lookup, "PREP_NOTIFY_DELAY", defaultPrepNotifyDelay),
		DispatchNotifyDelay: getDuration(lookup, "DISPATCH_NOTIFY_DELAY", defaultDispatchNotifyDelay),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("burgerbot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		handoffStr  = cfg.HandoffWindow.String()
		idleStr     = cfg.IdleThreshold.String()
		sweepStr    = cfg.SweepInterval.String()
		graceStr    = cfg.PostOrderGrace.String()
		shutdownStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for session snapshots (optional)")
	fs.StringVar(&cfg.TelegramToken, "t", cfg.TelegramToken, "Telegram bot token (optional)")
	fs.StringVar(&cfg.StoreName, "store-name", cfg.StoreName, "Store name shown in messages and receipts")
	fs.StringVar(&cfg.MenuPDFPath, "menu-pdf", cfg.MenuPDFPath, "Path to the menu PDF asset")
	fs.StringVar(&handoffStr, "handoff-window", handoffStr, "Human handoff suppression window")
	fs.StringVar(&idleStr, "idle-threshold", idleStr, "Inactivity threshold before session eviction")
	fs.StringVar(&sweepStr, "sweep-interval", sweepStr, "Interval between idle sweeps")
	fs.StringVar(&graceStr, "post-order-grace", graceStr, "Grace window before a completed session is evicted")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.HandoffWindow, err = time.ParseDuration(handoffStr); err != nil {
		return nil, fmt.Errorf("invalid handoff window: %w", err)
	}
	if cfg.IdleThreshold, err = time.ParseDuration(idleStr); err != nil {
		return nil, fmt.Errorf("invalid idle threshold: %w", err)
	}
	if cfg.SweepInterval, err = time.ParseDuration(sweepStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}
	if cfg.PostOrderGrace, err = time.ParseDuration(graceStr); err != nil {
		return nil, fmt.Errorf("invalid post-order grace: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.HandoffWindow <= 0 {
		cfg.HandoffWindow = defaultHandoffWindow
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = defaultIdleThreshold
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.PostOrderGrace <= 0 {
		cfg.PostOrderGrace = defaultPostOrderGrace
	}
	if cfg.PrepNotifyDelay <= 0 {
		cfg.PrepNotifyDelay = defaultPrepNotifyDelay
	}
	if cfg.DispatchNotifyDelay <= 0 {
		cfg.DispatchNotifyDelay = defaultDispatchNotifyDelay
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.StoreName == "" {
		cfg.StoreName = defaultStoreName
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
