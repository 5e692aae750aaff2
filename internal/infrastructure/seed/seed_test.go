package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Run("parses records and assigns missing ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.json")
		payload := `[
			{"id": "b1", "title": "A", "author": "X", "price": 9.99, "stock": 3},
			{"title": "B", "author": "Y", "price": 4.5, "stock": 1}
		]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		books, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, books, 2)

		assert.Equal(t, "b1", books[0].ID)
		assert.Equal(t, 3, books[0].Stock)
		assert.NotEmpty(t, books[1].ID, "records without an id get one assigned")
		assert.NotEqual(t, books[0].ID, books[1].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"`), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
