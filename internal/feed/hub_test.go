package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfagnish/trading-app/internal/domain"
)

func TestHub_PublishDeliversToAll(t *testing.T) {
	h := NewHub(4)
	idA, a := h.Subscribe()
	idB, b := h.Subscribe()
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, 2, h.Count())

	h.Publish(domain.Trade{ID: 11}, domain.Trade{ID: 12})

	for _, ch := range []<-chan domain.Trade{a, b} {
		assert.Equal(t, int64(11), (<-ch).ID)
		assert.Equal(t, int64(12), (<-ch).ID)
	}
}

func TestHub_SlowSubscriberDrops(t *testing.T) {
	h := NewHub(1)
	_, ch := h.Subscribe()

	h.Publish(domain.Trade{ID: 1}, domain.Trade{ID: 2}, domain.Trade{ID: 3})

	assert.Equal(t, int64(1), (<-ch).ID)
	assert.Equal(t, int64(2), h.Dropped())
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub(0)
	id, ch := h.Subscribe()

	h.Unsubscribe(id)
	h.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, h.Count())

	h.Publish(domain.Trade{ID: 1})
	assert.Zero(t, h.Dropped())
}

func TestHub_Close(t *testing.T) {
	h := NewHub(2)
	_, before := h.Subscribe()

	h.Close()
	h.Close()

	_, open := <-before
	assert.False(t, open)

	_, after := h.Subscribe()
	_, open = <-after
	require.False(t, open)
	assert.Zero(t, h.Count())
}
