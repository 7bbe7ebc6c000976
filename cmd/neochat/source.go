package main

import (
	"context"
	"time"

	"github.com/fwojciec/neochat"
	"github.com/fwojciec/neochat/firebase"
	log "github.com/sirupsen/logrus"
)

// pingTimeout bounds the startup reachability probe.
const pingTimeout = 5 * time.Second

// resolveSource picks the message backend once, before the TUI starts. Any
// failure to configure or reach Firebase falls back to the offline loopback;
// there is no reconnect later. Flag values are passed in as parameters so
// the resolution is testable without touching the command globals.
func resolveSource(ctx context.Context, queue *neochat.Queue, entry *log.Entry, offline bool, configPath string) (neochat.Source, neochat.Listener, neochat.ConnectionState) {
	if offline {
		entry.Info("running offline by request")
		return neochat.NewLoopback(queue), nil, neochat.StateOffline
	}

	cfg, err := firebase.LoadConfig(configPath)
	if err != nil {
		entry.WithError(err).Warn("firebase not configured")
		return neochat.NewLoopback(queue), nil, neochat.StateOffline
	}

	client := firebase.New(cfg.DatabaseURL)
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		entry.WithError(err).Warn("firebase unreachable")
		return neochat.NewLoopback(queue), nil, neochat.StateError
	}

	entry.WithField("database_url", cfg.DatabaseURL).Info("connected to firebase")
	return client, client, neochat.StateConnected
}
