package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndDrain(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	svc.Add(Event{UserID: 1, ChatID: 10, Command: "quiz"})
	svc.Add(Event{UserID: 2, ChatID: 20, Text: "привет"})

	ev := <-svc.Channel()
	assert.Equal(t, int64(1), ev.UserID)
	assert.Equal(t, "quiz", ev.Command)

	ev = <-svc.Channel()
	assert.Equal(t, int64(2), ev.UserID)
	assert.Equal(t, "привет", ev.Text)
}

func TestAdd_DropsWhenFull(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	for i := 0; i < bufferSize+10; i++ {
		svc.Add(Event{UserID: int64(i)})
	}

	assert.Len(t, svc.Channel(), bufferSize)
}

func TestAdd_AfterShutdownDoesNotPanic(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, svc.Shutdown())

	assert.NotPanics(t, func() {
		svc.Add(Event{UserID: 1})
	})
}
