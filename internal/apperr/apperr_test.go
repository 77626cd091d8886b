package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(NotFound(KindArticle, "1")))
	assert.Equal(t, CodeConflict, CodeOf(SlugConflict(KindTag, "go")))
	assert.Equal(t, CodePreconditionFailed, CodeOf(PreconditionFailed(KindAuthor, "1", "x")))
	assert.Equal(t, CodeInvalidArgument, CodeOf(InvalidArgument(KindArticle, "1", "x")))
	assert.Equal(t, Code(""), CodeOf(errors.New("普通错误")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestCodeOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("外层: %w", NotFound(KindCategory, "5"))
	assert.True(t, IsNotFound(wrapped))
}

func TestFromStorage(t *testing.T) {
	assert.NoError(t, FromStorage(nil, KindArticle, "1"))

	err := FromStorage(gorm.ErrRecordNotFound, KindArticle, "1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "文章")

	err = FromStorage(errors.New("UNIQUE constraint failed: articles.slug"), KindArticle, "my-slug")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	err = FromStorage(errors.New("Error 1062: Duplicate entry 'x' for key 'slug'"), KindTag, "x")
	assert.True(t, IsConflict(err))

	// 其他存储错误原样透传
	raw := errors.New("connection refused")
	assert.Equal(t, raw, FromStorage(raw, KindArticle, "1"))
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "文章", KindName(KindArticle))
	assert.Equal(t, "unknown", KindName("unknown"))
}
