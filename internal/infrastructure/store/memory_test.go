package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.True(t, s.Set(ctx, "k", payload{Name: "ada", Count: 3}))

	var got payload
	require.True(t, s.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "ada", Count: 3}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())

	var got map[string]string
	assert.False(t, s.Get(context.Background(), "absent", &got))
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	require.True(t, s.Set(ctx, "k", "v"))
	assert.True(t, s.Remove(ctx, "k"))

	var got string
	assert.False(t, s.Get(ctx, "k", &got))

	// Removing an absent key still reports success.
	assert.True(t, s.Remove(ctx, "k"))
}

func TestMemoryStoreUnmarshalableValueFailsSoft(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())

	// Channels cannot be JSON-marshalled; the write must report false
	// instead of raising a fault.
	assert.False(t, s.Set(context.Background(), "k", make(chan int)))
}

func TestMemoryStoreCorruptPayloadReadsAsMissing(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	s.Inject("k", []byte(`{not json`))

	var got map[string]string
	assert.False(t, s.Get(context.Background(), "k", &got))
}
