package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidator(t *testing.T) {
	v := &PostValidator{}

	t.Run("title", func(t *testing.T) {
		assert.Error(t, v.Title(""))
		assert.Error(t, v.Title(strings.Repeat("a", 201)))
		assert.NoError(t, v.Title("Term dates"))
	})

	t.Run("content", func(t *testing.T) {
		assert.Error(t, v.Content(""))
		assert.Error(t, v.Content(strings.Repeat("a", 10_001)))
		assert.NoError(t, v.Content("hello"))
	})

	t.Run("tags", func(t *testing.T) {
		assert.NoError(t, v.Tags(nil))
		assert.NoError(t, v.Tags([]string{"a", "b", "c", "d", "e"}))
		assert.Error(t, v.Tags([]string{"a", "b", "c", "d", "e", "f"}))
		assert.Error(t, v.Tags([]string{"math", "math"}))
		assert.Error(t, v.Tags([]string{strings.Repeat("a", 31)}))
	})
}

func TestCommentValidator(t *testing.T) {
	v := &CommentValidator{}
	require.Error(t, v.Content(""))
	require.Error(t, v.Content(strings.Repeat("a", 10_001)))
	require.NoError(t, v.Content("sounds good"))
}
