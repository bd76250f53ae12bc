package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.NextTab.Keys(), "tab")
	assert.Contains(t, km.PrevTab.Keys(), "shift+tab")
}

func TestDefaultKeyMap_FilterBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"s"}, km.Strength.Keys())
	assert.Equal(t, []string{"d"}, km.Dormant.Keys())
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Len(t, km.ContactsHelp(), 6)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("a", "b"))

	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.key, binding))
		})
	}
}
