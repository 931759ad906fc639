package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocumentArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves documents", func(t *testing.T) {
		archive := NewMemoryDocumentArchive()

		err := archive.Store(ctx, "delivery-documents/2023/10/28/abc", "image/png", []byte{1, 2, 3})
		require.NoError(t, err)

		content, contentType, ok := archive.Get("delivery-documents/2023/10/28/abc")
		require.True(t, ok)
		assert.Equal(t, []byte{1, 2, 3}, content)
		assert.Equal(t, "image/png", contentType)
		assert.Equal(t, 1, archive.Len())
	})

	t.Run("rejects empty key", func(t *testing.T) {
		archive := NewMemoryDocumentArchive()
		err := archive.Store(ctx, "", "image/png", []byte{1})
		assert.Error(t, err)
	})

	t.Run("stored content is isolated from caller mutation", func(t *testing.T) {
		archive := NewMemoryDocumentArchive()
		payload := []byte{9, 9, 9}
		require.NoError(t, archive.Store(ctx, "k", "application/pdf", payload))

		payload[0] = 0
		content, _, ok := archive.Get("k")
		require.True(t, ok)
		assert.Equal(t, byte(9), content[0])
	})

	t.Run("missing key reports not found", func(t *testing.T) {
		archive := NewMemoryDocumentArchive()
		_, _, ok := archive.Get("missing")
		assert.False(t, ok)
	})
}
