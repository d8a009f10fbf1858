package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sambatin/internal/events"
	"sambatin/internal/models"
	"sambatin/internal/storage"
)

func TestSweep_MarksExpiredAndNotifies(t *testing.T) {
	store := storage.NewMemoryStorage()
	hub := events.NewHub()
	svc := NewExpiryService(store, hub)

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	require.NoError(t, store.CreateSambat(&models.Sambat{ID: "burnt", Content: "a", PersonaName: "Anonim", ExpiresAt: &past}))
	require.NoError(t, store.CreateSambat(&models.Sambat{ID: "alive", Content: "b", PersonaName: "Anonim", ExpiresAt: &future}))
	require.NoError(t, store.CreateSambat(&models.Sambat{ID: "forever", Content: "c", PersonaName: "Anonim"}))

	ch, cancel := hub.Subscribe(events.ScopePosts)
	defer cancel()

	assert.Equal(t, 1, svc.Sweep(now))

	select {
	case e := <-ch:
		assert.Equal(t, events.PostDeleted, e.Type)
		assert.Equal(t, "burnt", e.SambatID)
	case <-time.After(time.Second):
		t.Fatal("no post_deleted event published")
	}

	// 过期的帖子从活跃列表里消失
	active, err := store.ListActiveSambats(50)
	require.NoError(t, err)
	ids := make([]string, 0, len(active))
	for _, s := range active {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"alive", "forever"}, ids)
}

func TestSweep_NothingExpiredIsQuiet(t *testing.T) {
	store := storage.NewMemoryStorage()
	hub := events.NewHub()
	svc := NewExpiryService(store, hub)

	future := time.Now().Add(time.Hour)
	require.NoError(t, store.CreateSambat(&models.Sambat{ID: "alive", Content: "a", PersonaName: "Anonim", ExpiresAt: &future}))

	ch, cancel := hub.Subscribe(events.ScopePosts)
	defer cancel()

	assert.Equal(t, 0, svc.Sweep(time.Now()))

	select {
	case e := <-ch:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSweep_SecondPassIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStorage()
	hub := events.NewHub()
	svc := NewExpiryService(store, hub)

	now := time.Now()
	past := now.Add(-time.Minute)
	require.NoError(t, store.CreateSambat(&models.Sambat{ID: "burnt", Content: "a", PersonaName: "Anonim", ExpiresAt: &past}))

	assert.Equal(t, 1, svc.Sweep(now))
	assert.Equal(t, 0, svc.Sweep(now))
}
