package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("data válida", func(t *testing.T) {
		date, err := ParseDate("2024-01-05")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-05", date.Format("2006-01-02"))
	})

	t.Run("vazio vira data zerada", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("formato inesperado", func(t *testing.T) {
		_, err := ParseDate("05/01/2024")
		assert.Error(t, err)
	})
}
