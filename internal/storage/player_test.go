package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "player")
	store := NewPlayerStore(path, nil)

	assert.Equal(t, "", store.Name(), "missing file means no saved name")

	store.SetName("  Ada Lovelace  ")
	assert.Equal(t, "Ada Lovelace", store.Name())

	store.SetName("Grace")
	assert.Equal(t, "Grace", store.Name())
}
