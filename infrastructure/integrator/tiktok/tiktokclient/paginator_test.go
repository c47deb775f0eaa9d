package tiktokclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_SinglePage(t *testing.T) {
	calls := 0

	stats, err := paginate(PageOptions{}, func(searchID string) (int, bool, string, error) {
		calls++
		assert.Empty(t, searchID)
		return 10, false, "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, stats.Pages)
	assert.False(t, stats.Truncated)
}

func TestPaginate_CursorCarriedBetweenPages(t *testing.T) {
	cursors := []string{}

	stats, err := paginate(PageOptions{}, func(searchID string) (int, bool, string, error) {
		cursors = append(cursors, searchID)
		switch len(cursors) {
		case 1:
			return 5, true, "cursor-1", nil
		case 2:
			return 5, true, "cursor-2", nil
		default:
			return 2, false, "", nil
		}
	})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Pages)
	// O cursor da primeira requisição é vazio; depois, cada página carrega
	// o search_id devolvido pela anterior
	assert.Equal(t, []string{"", "cursor-1", "cursor-2"}, cursors)
}

func TestPaginate_EmptyPageStops(t *testing.T) {
	stats, err := paginate(PageOptions{}, func(searchID string) (int, bool, string, error) {
		// has_more verdadeiro com página vazia não deve continuar o loop
		return 0, true, "cursor-suspeito", nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
}

func TestPaginate_MaxPagesCeiling(t *testing.T) {
	calls := 0

	stats, err := paginate(PageOptions{MaxPages: 3}, func(searchID string) (int, bool, string, error) {
		calls++
		return 5, true, "next", nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, stats.Pages)
}

func TestPaginate_ErrorOnFirstPageFailsEvenTolerant(t *testing.T) {
	wantErr := errors.New("boom")

	stats, err := paginate(PageOptions{Tolerant: true}, func(searchID string) (int, bool, string, error) {
		return 0, false, "", wantErr
	})

	// Sem nenhuma página acumulada não há resultado parcial a preservar
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, stats.Pages)
	assert.False(t, stats.Truncated)
}

func TestPaginate_TolerantTruncatesMidSession(t *testing.T) {
	calls := 0

	stats, err := paginate(PageOptions{Tolerant: true}, func(searchID string) (int, bool, string, error) {
		calls++
		if calls == 1 {
			return 5, true, "cursor-1", nil
		}
		return 0, false, "", errors.New("falha transitória")
	})

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
	assert.True(t, stats.Truncated)
}

func TestPaginate_StrictFailsMidSession(t *testing.T) {
	wantErr := errors.New("falha transitória")
	calls := 0

	stats, err := paginate(PageOptions{}, func(searchID string) (int, bool, string, error) {
		calls++
		if calls == 1 {
			return 5, true, "cursor-1", nil
		}
		return 0, false, "", wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, stats.Pages)
	assert.False(t, stats.Truncated)
}
