package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

func TestCategoriesListCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.categories.rules = []domain.CategoryRule{{Name: "vc", Keywords: []string{"venture", "capital"}}}
	ts.categories.themes = []domain.Theme{{Name: "ai", Keywords: []string{"llm"}}}

	out, err := executeCommand("categories", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "venture, capital")
	assert.Contains(t, out, "Themes:")
	assert.Contains(t, out, "llm")
}

func TestCategoriesListCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("categories", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "(none configured)")
}

func TestCategoriesAddCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("categories", "add", "recruiters", "recruit", "talent")
	require.NoError(t, err)
	require.Len(t, ts.categories.added, 1)
	assert.Equal(t, domain.CategoryRule{Name: "recruiters", Keywords: []string{"recruit", "talent"}}, ts.categories.added[0])
	assert.Contains(t, out, `Saved category "recruiters" (2 keywords)`)

	_, err = executeCommand("categories", "add", "lonely")
	assert.Error(t, err)
}

func TestCategoriesRemoveCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("category", "remove", "vc")
	require.NoError(t, err)
	assert.Equal(t, []string{"vc"}, ts.categories.removed)

	ts.categories.err = domain.ErrNotFound
	_, err = executeCommand("categories", "remove", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
