// Command neochat is a terminal classroom chat client backed by a shared
// Firebase Realtime Database.
//
// Usage:
//
//	neochat [flags]
//
// Flags:
//
//	--name string     Display name (3-15 characters; prompted in the TUI if omitted)
//	--config string   Path to the Firebase config file (default "firebase_config.json")
//	--history string  Path to the chat history file (default "chat_history.txt")
//	--log string      Path to the log file (default "neochat.log")
//	--offline         Run without a backend; messages stay local
//
// The FIREBASE_CONFIG and DATABASE_URL environment variables override the
// config file; a .env file in the working directory is read first.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/neochat"
	bt "github.com/fwojciec/neochat/bubbletea"
	"github.com/fwojciec/neochat/history"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "2.0.0"

var (
	flagName    string
	flagConfig  string
	flagHistory string
	flagLog     string
	flagOffline bool
)

var rootCmd = &cobra.Command{
	Use:     "neochat",
	Short:   "NeoChat - Secure Classroom Messenger",
	Long:    "NeoChat is a classroom chat client. Messages are exchanged through a\nshared Firebase Realtime Database; without a reachable database the client\nruns in offline mode and keeps messages local.",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagName, "name", "", "display name (3-15 characters; prompted in the TUI if omitted)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "firebase_config.json", "path to the Firebase config file")
	rootCmd.Flags().StringVar(&flagHistory, "history", history.DefaultPath, "path to the chat history file")
	rootCmd.Flags().StringVar(&flagLog, "log", "neochat.log", "path to the log file")
	rootCmd.Flags().BoolVar(&flagOffline, "offline", false, "run without a backend; messages stay local")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env first; FIREBASE_CONFIG and DATABASE_URL may come from it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	// The terminal belongs to the TUI, so logs go to a file.
	logFile, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(logFile)
	entry := logger.WithField("run_id", uuid.NewString())
	entry.WithField("version", version).Info("starting neochat")

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := &neochat.Queue{}
	session := &neochat.Session{}
	transcript := &neochat.Transcript{}

	if flagName != "" {
		if err := session.SetName(flagName); err != nil {
			return fmt.Errorf("invalid --name: %w", err)
		}
	}

	source, listener, conn := resolveSource(ctx, queue, entry, flagOffline, flagConfig)
	chat := neochat.NewChat(queue, source)

	// Startup notices queue up before the program runs and surface on the
	// first display tick.
	if session.Named() {
		chat.System("User set to: " + session.Name())
	}
	if conn != neochat.StateConnected {
		chat.System("Running in offline mode - messages won't be saved")
	}

	persister := history.New(flagHistory)

	m := bt.New(bt.Config{
		Queue:      queue,
		Session:    session,
		Transcript: transcript,
		Chat:       chat,
		Listener:   listener,
		Persister:  persister,
		Connection: conn,
		Dark:       termenv.HasDarkBackground(),
		Logger:     entry,
	})

	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	saveOnExit(session, transcript, persister, entry)

	entry.WithField("messages_sent", session.Sent()).Info("neochat stopped")
	return nil
}
