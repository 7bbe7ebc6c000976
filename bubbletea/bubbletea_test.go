package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/neochat"
	bt "github.com/fwojciec/neochat/bubbletea"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the collaborators shared between a model under test and
// the assertions, mirroring how the command wires them.
type testEnv struct {
	queue      *neochat.Queue
	session    *neochat.Session
	transcript *neochat.Transcript
	chat       *neochat.Chat
}

// newEnv creates an offline environment: sends loop straight back into the
// queue.
func newEnv() *testEnv {
	q := &neochat.Queue{}
	return &testEnv{
		queue:      q,
		session:    &neochat.Session{},
		transcript: &neochat.Transcript{},
		chat:       neochat.NewChat(q, neochat.NewLoopback(q)),
	}
}

// namedEnv is newEnv with the display name already set.
func namedEnv(t *testing.T, name string) *testEnv {
	t.Helper()
	e := newEnv()
	require.NoError(t, e.session.SetName(name))
	return e
}

func (e *testEnv) config() bt.Config {
	return bt.Config{
		Queue:      e.queue,
		Session:    e.session,
		Transcript: e.transcript,
		Chat:       e.chat,
		Connection: neochat.StateOffline,
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, cfg bt.Config) bt.Model {
	t.Helper()
	return updateModel(t, bt.New(cfg), tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// typeString feeds s into the model as a single rune key message.
func typeString(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	return updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// press sends a special key by type.
func press(t *testing.T, m bt.Model, k tea.KeyType) bt.Model {
	t.Helper()
	return updateModel(t, m, tea.KeyMsg{Type: k})
}

// drainTick delivers one display tick.
func drainTick(t *testing.T, m bt.Model) bt.Model {
	t.Helper()
	return updateModel(t, m, bt.TickMsg{})
}
