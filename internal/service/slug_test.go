package service

import (
	"testing"

	"editorial/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugNormalize(t *testing.T) {
	slugs := NewSlugAllocator()

	assert.Equal(t, "hello-world", slugs.Normalize("Hello World"))
	assert.Equal(t, "hello-world", slugs.Normalize("hello_world"))
	assert.Equal(t, "hello-world", slugs.Normalize("Hello   ---  World"))
	assert.Equal(t, "hello-world-2", slugs.Normalize("Hello, World! (2)"))
	assert.Equal(t, "abc123", slugs.Normalize("ABC123"))
	assert.Equal(t, "", slugs.Normalize("!!!"))
	assert.Equal(t, "trimmed", slugs.Normalize("--trimmed--"))
}

func TestSlugEnsureUnique(t *testing.T) {
	db := newTestDB(t)
	slugs := NewSlugAllocator()

	author := seedAuthor(t, db, "zhang-san")

	// 同种类冲突
	err := slugs.EnsureUnique(db, apperr.KindAuthor, "zhang-san", 0)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// 排除自身后不冲突
	require.NoError(t, slugs.EnsureUnique(db, apperr.KindAuthor, "zhang-san", author.ID))

	// 不同种类互不影响
	require.NoError(t, slugs.EnsureUnique(db, apperr.KindTag, "zhang-san", 0))

	// 空slug
	err = slugs.EnsureUnique(db, apperr.KindAuthor, "", 0)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}
