package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStore(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore(map[string]string{"index.html": "<html></html>"})

	data, err := store.Read(ctx, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	_, err = store.Read(ctx, "nope.html")
	assert.True(t, IsNotFound(err))

	require.NoError(t, store.Write(ctx, "index.html", []byte("changed")))
	got, ok := store.Get("index.html")
	require.True(t, ok)
	assert.Equal(t, "changed", got)
	assert.Equal(t, []string{"index.html"}, store.Writes())
	assert.Equal(t, MockCalls{Read: 2, Write: 1}, store.Calls())
}

func TestMockStoreFailWrite(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore(map[string]string{"a.html": "a"})
	boom := errors.New("disk full")
	store.FailWrite("a.html", boom)

	err := store.Write(ctx, "a.html", []byte("b"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	got, _ := store.Get("a.html")
	assert.Equal(t, "a", got)
	assert.Empty(t, store.Writes())
}
