package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_StartsIdle(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	sess := svc.GetOrCreate(42)
	assert.Equal(t, int64(42), sess.UserID)
	assert.IsType(t, Idle{}, sess.Mode)
	assert.Equal(t, 1, svc.Len())

	// same user, same session
	svc.GetOrCreate(42)
	assert.Equal(t, 1, svc.Len())
}

func TestGet_MissingUser(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	_, ok := svc.Get(1)
	assert.False(t, ok)
}

func TestSetMode_ReplacesMode(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	svc.SetMode(1, InQuiz{Cursor: 3, Score: 2})

	sess, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, InQuiz{Cursor: 3, Score: 2}, sess.Mode)

	svc.SetMode(1, Idle{})

	sess, _ = svc.Get(1)
	assert.IsType(t, Idle{}, sess.Mode)
	assert.Equal(t, 1, svc.Len())
}

func TestGetOrCreate_ReturnsCopy(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	sess := svc.GetOrCreate(1)
	sess.Mode = BrowsingCards{Cursor: 5}

	stored, _ := svc.Get(1)
	assert.IsType(t, Idle{}, stored.Mode)
}

func TestConcurrentUsers(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for userID := int64(0); userID < 50; userID++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			for cursor := 0; cursor < 20; cursor++ {
				svc.GetOrCreate(id)
				svc.SetMode(id, BrowsingCards{Cursor: cursor})
				svc.Get(id)
			}
		}(userID)
	}
	wg.Wait()

	assert.Equal(t, 50, svc.Len())

	for userID := int64(0); userID < 50; userID++ {
		sess, ok := svc.Get(userID)
		require.True(t, ok)
		assert.Equal(t, BrowsingCards{Cursor: 19}, sess.Mode)
	}
}
