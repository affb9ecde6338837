package tomlette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eidsvoll/tomlette/internal/fixturename"
)

func TestParse_basicDocument(t *testing.T) {
	doc, err := Parse(`
title = "TOML Example"

[owner]
name = "Tom Preston-Werner"
`, "test.toml")
	require.NoError(t, err)

	v, ok := doc.Get("title")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "TOML Example", s)

	owner, ok := doc.Lookup("owner.name")
	require.True(t, ok)
	name, _ := owner.AsString()
	assert.Equal(t, "Tom Preston-Werner", name)
}

func TestParse_syntaxErrorSurfacesFilenameInMessage(t *testing.T) {
	_, err := Parse("key = \n", "broken.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.toml")
}

func TestParseFile_readsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fixturename.New("doc", ".toml"))
	require.NoError(t, os.WriteFile(path, []byte("answer = 42\n"), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)

	v, ok := doc.Get("answer")
	require.True(t, ok)
	i, _ := v.AsInteger()
	assert.Equal(t, int64(42), i)
}

func TestParseFile_missingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestTable_lookupFailureModes(t *testing.T) {
	doc, err := Parse(`[a]
b = 1
`, "test.toml")
	require.NoError(t, err)

	t.Run("missing segment", func(t *testing.T) {
		_, ok := doc.Lookup("a.nope")
		assert.False(t, ok)
	})
	t.Run("descending through a non-table", func(t *testing.T) {
		_, ok := doc.Lookup("a.b.c")
		assert.False(t, ok)
	})
	t.Run("malformed path", func(t *testing.T) {
		_, ok := doc.Lookup("a..b")
		assert.False(t, ok)
	})
	t.Run("empty path", func(t *testing.T) {
		_, ok := doc.Lookup("")
		assert.False(t, ok)
	})
}

func TestTable_override(t *testing.T) {
	doc, err := Parse(`[server]
port = 80
`, "test.toml")
	require.NoError(t, err)

	t.Run("overwrites an existing leaf", func(t *testing.T) {
		require.NoError(t, doc.Override("server.port", "8080"))
		v, ok := doc.Lookup("server.port")
		require.True(t, ok)
		s, ok := v.AsString()
		require.True(t, ok, "override always stores a string")
		assert.Equal(t, "8080", s)
	})

	t.Run("creates missing intermediate tables", func(t *testing.T) {
		require.NoError(t, doc.Override("server.tls.enabled", "true"))
		v, ok := doc.Lookup("server.tls.enabled")
		require.True(t, ok)
		s, _ := v.AsString()
		assert.Equal(t, "true", s)
	})

	t.Run("rejects descent through a non-table", func(t *testing.T) {
		err := doc.Override("server.port.sub", "x")
		assert.Error(t, err)
	})

	t.Run("rejects a malformed path", func(t *testing.T) {
		err := doc.Override("", "x")
		assert.Error(t, err)
	})
}

func TestTable_overrideRejectsSealedTable(t *testing.T) {
	doc, err := Parse(`point = { x = 1, y = 2 }`, "test.toml")
	require.NoError(t, err)

	err = doc.Override("point.z", "3")
	assert.Error(t, err)
}

func TestTable_keysAndLen(t *testing.T) {
	doc, err := Parse("a = 1\nb = 2\nc = 3\n", "test.toml")
	require.NoError(t, err)

	assert.Equal(t, 3, doc.Len())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, doc.Keys())
}
