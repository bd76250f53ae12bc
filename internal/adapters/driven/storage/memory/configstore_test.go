package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("categories.founders")
	assert.False(t, ok)

	require.NoError(t, store.Set("categories.founders", []string{"founder"}))
	require.NoError(t, store.Set("categories.founders", []string{"founder", "co-founder"}))

	val, ok := store.Get("categories.founders")
	assert.True(t, ok)
	assert.Equal(t, []string{"founder", "co-founder"}, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set(driven.ConfigExportDelimiter, ";")
	_ = store.Set(driven.ConfigSummaryMaxContacts, 10)

	assert.Equal(t, ";", store.GetString(driven.ConfigExportDelimiter))
	assert.Empty(t, store.GetString(driven.ConfigSummaryMaxContacts))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 15, want: 15},
		{name: "int64 from TOML", value: int64(20), want: 20},
		{name: "float64 from JSON", value: float64(7), want: 7},
		{name: "string", value: "15", want: 0},
		{name: "zero", value: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewConfigStore()
			require.NoError(t, store.Set(driven.ConfigSummaryMaxContacts, tc.value))
			assert.Equal(t, tc.want, store.GetInt(driven.ConfigSummaryMaxContacts))
		})
	}
	assert.Zero(t, NewConfigStore().GetInt(driven.ConfigSummaryMaxContacts))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("categories.founders", []string{"founder"})
	_ = store.Set("themes.events", []any{"conference", 3, "meetup"})
	_ = store.Set("categories.broken", "founder")

	assert.Equal(t, []string{"founder"}, store.GetStringSlice("categories.founders"))
	assert.Equal(t, []string{"conference", "meetup"}, store.GetStringSlice("themes.events"))
	assert.Nil(t, store.GetStringSlice("categories.broken"))
	assert.Nil(t, store.GetStringSlice("categories.missing"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("categories.recruiters", []string{"recruiter"})
	_ = store.Set("categories.founders", []string{"founder"})
	_ = store.Set("categoriesx", "not a child")
	_ = store.Set("themes.events", []string{"conference"})

	assert.Equal(t, []string{"categories.founders", "categories.recruiters"}, store.Keys("categories"))
	assert.Len(t, store.Keys(""), 4)
	assert.Empty(t, store.Keys("missing"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("categories.founders", []string{"founder"})

	require.NoError(t, store.Delete("categories.founders"))
	_, ok := store.Get("categories.founders")
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete("categories.founders"))
}

func TestConfigStore_InstancesAreIsolated(t *testing.T) {
	a, b := NewConfigStore(), NewConfigStore()
	_ = a.Set("categories.founders", []string{"founder"})

	assert.Empty(t, b.Keys("categories"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	names := []string{"founders", "recruiters", "investors", "engineers"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "categories." + names[i%len(names)]
			_ = store.Set(key, []string{names[i%len(names)]})
			_ = store.GetStringSlice(key)
			_ = store.Keys("categories")
			if i%5 == 0 {
				_ = store.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, len(store.Keys("categories")), len(names))
}
