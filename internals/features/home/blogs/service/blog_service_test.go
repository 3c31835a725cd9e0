package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haskenrayuwa_backend/internals/features/home/blogs/model"
)

func TestApplyUpdates_UpdatableFields(t *testing.T) {
	post := model.Blog{BlogTitle: "Old", BlogAuthor: "A", BlogContent: "Body"}

	err := ApplyUpdates(&post, map[string]interface{}{
		"blog_title":   "New title",
		"blog_content": "New body",
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", post.BlogTitle)
	assert.Equal(t, "New body", post.BlogContent)
	assert.Equal(t, "A", post.BlogAuthor)
}

func TestApplyUpdates_RejectsUnknownField(t *testing.T) {
	post := model.Blog{}

	err := ApplyUpdates(&post, map[string]interface{}{"blog_date": "2024-01-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestApplyUpdates_RejectsEmptyValue(t *testing.T) {
	post := model.Blog{BlogTitle: "Keep"}

	err := ApplyUpdates(&post, map[string]interface{}{"blog_title": ""})
	require.Error(t, err)
	assert.Equal(t, "Keep", post.BlogTitle)
}
