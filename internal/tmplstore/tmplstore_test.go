package tmplstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCreateAndLoad(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Create("greeting", "Hello {name}!", false))

	content, err := store.Load("greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello {name}!", content)
}

func TestCreateRefusesOverwrite(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Create("greeting", "v1", false))
	assert.Error(t, store.Create("greeting", "v2", false))

	// Force flag replaces the content
	require.NoError(t, store.Create("greeting", "v2", true))
	content, err := store.Load("greeting")
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
}

func TestCreateValidation(t *testing.T) {
	store := newStore(t)

	tests := []struct {
		testName string
		name     string
		content  string
	}{
		{"empty name", "", "content"},
		{"path traversal", "../evil", "content"},
		{"slash in name", "a/b", "content"},
		{"empty content", "ok", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			assert.Error(t, store.Create(tt.name, tt.content, false))
		})
	}
}

func TestList(t *testing.T) {
	store := newStore(t)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.Create("bravo", "b", false))
	require.NoError(t, store.Create("alpha", "a", false))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, names)
}

func TestLoadMissing(t *testing.T) {
	store := newStore(t)
	_, err := store.Load("ghost")
	assert.ErrorContains(t, err, "not found")
}

func TestDelete(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Create("gone", "x", false))
	require.NoError(t, store.Delete("gone"))

	_, err := store.Load("gone")
	assert.Error(t, err)

	assert.Error(t, store.Delete("gone"))
}

func TestVariables(t *testing.T) {
	content := "Ask {name} about {topic}, then {name} again. Not a marker: {bad name}"
	assert.Equal(t, []string{"name", "topic"}, Variables(content))
	assert.Nil(t, Variables("no markers here"))
}

func TestFill(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("ask", "Ask {name} about {topic}.", false))

	prompt, err := store.Fill("ask", map[string]string{"name": "Wen", "topic": "rain"})
	require.NoError(t, err)
	assert.Equal(t, "Ask Wen about rain.", prompt)
}

func TestFillUnfilledVariables(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("ask", "Ask {name} about {topic}.", false))

	_, err := store.Fill("ask", map[string]string{"name": "Wen"})
	assert.ErrorContains(t, err, "topic")
}

func TestFillIgnoresExtraVariables(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("plain", "No markers.", false))

	prompt, err := store.Fill("plain", map[string]string{"unused": "x"})
	require.NoError(t, err)
	assert.Equal(t, "No markers.", prompt)
}

func TestEnsureDefaults(t *testing.T) {
	store := newStore(t)

	installed, err := store.EnsureDefaults()
	require.NoError(t, err)
	assert.Contains(t, installed, "fortune")
	assert.Contains(t, installed, "decision")

	// Defaults reference the question variable
	content, err := store.Load("fortune")
	require.NoError(t, err)
	assert.Contains(t, Variables(content), "question")

	// A second run installs nothing and keeps local edits
	require.NoError(t, store.Create("fortune", "customized {question}", true))
	installed, err = store.EnsureDefaults()
	require.NoError(t, err)
	assert.Empty(t, installed)

	content, err = store.Load("fortune")
	require.NoError(t, err)
	assert.Equal(t, "customized {question}", content)
}
