package app

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/random"
	keyringsvc "github.com/kingaa1/Cryptography-algorithms/internal/services/keyring"
	"github.com/kingaa1/Cryptography-algorithms/internal/store"
)

// Wire bundles the logger, random source, stores and services for the CLI.
type Wire struct {
	Log     *logrus.Logger
	Random  domain.RandomSource
	Keys    domain.KeyStore
	Keyring domain.KeyringService
	App     *App
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	home := cfg.Home
	if home == "" {
		home = DefaultHome()
	}

	// Ephemeral exponents come from cfg.Random, crypto/rand when nil.
	src := random.New(cfg.Random)

	// File-based keyring store
	keyStore := store.NewKeyFileStore(home, log)

	// High-level services
	keyringSvc := keyringsvc.New(keyStore, log)

	log.WithField("home", home).Debug("wired application")
	return &Wire{
		Log:     log,
		Random:  src,
		Keys:    keyStore,
		Keyring: keyringSvc,
		App:     New(src, log),
	}, nil
}

func newLogger(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.LogOutput != nil {
		log.SetOutput(cfg.LogOutput)
	}
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	return log, nil
}
