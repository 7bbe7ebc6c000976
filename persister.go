package neochat

// Persister snapshots the rendered transcript to durable storage, replacing
// any prior snapshot.
type Persister interface {
	Save(text string) error
}
