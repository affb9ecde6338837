package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("single segment", func(t *testing.T) {
		segs, err := Split("key")
		require.NoError(t, err)
		assert.Equal(t, []string{"key"}, segs)
	})
	t.Run("dotted path", func(t *testing.T) {
		segs, err := Split("a.b-c.d_e")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b-c", "d_e"}, segs)
	})
	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Split("")
		assert.Error(t, err)
	})
	t.Run("empty segment is rejected", func(t *testing.T) {
		_, err := Split("a..b")
		assert.Error(t, err)
	})
	t.Run("a segment outside the bare-key grammar is rejected", func(t *testing.T) {
		_, err := Split("a.b c")
		assert.Error(t, err)
	})
	t.Run("unicode segment is rejected by the strict grammar", func(t *testing.T) {
		_, err := Split("café")
		assert.Error(t, err)
	})
}

func TestSplitPermissive(t *testing.T) {
	t.Run("accepts a unicode identifier segment", func(t *testing.T) {
		segs, err := SplitPermissive("café.ménu")
		require.NoError(t, err)
		assert.Equal(t, []string{"café", "ménu"}, segs)
	})
	t.Run("accepts the strict bare-key grammar too", func(t *testing.T) {
		segs, err := SplitPermissive("server.port")
		require.NoError(t, err)
		assert.Equal(t, []string{"server", "port"}, segs)
	})
	t.Run("accepts a leading underscore", func(t *testing.T) {
		segs, err := SplitPermissive("_private.key")
		require.NoError(t, err)
		assert.Equal(t, []string{"_private", "key"}, segs)
	})
	t.Run("rejects a leading digit", func(t *testing.T) {
		_, err := SplitPermissive("1abc")
		assert.Error(t, err)
	})
	t.Run("rejects an empty path", func(t *testing.T) {
		_, err := SplitPermissive("")
		assert.Error(t, err)
	})
	t.Run("rejects an empty segment", func(t *testing.T) {
		_, err := SplitPermissive("a..b")
		assert.Error(t, err)
	})
}
