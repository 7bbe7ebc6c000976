package main

import (
	"github.com/fwojciec/neochat"
	log "github.com/sirupsen/logrus"
)

// saveOnExit writes the transcript to the history file when the session sent
// anything. Save failures are logged, not returned; the program is exiting.
func saveOnExit(session *neochat.Session, transcript *neochat.Transcript, persister neochat.Persister, entry *log.Entry) {
	if session.Sent() == 0 {
		return
	}
	if err := persister.Save(transcript.Text()); err != nil {
		entry.WithError(err).Error("failed to save chat history")
	}
}
