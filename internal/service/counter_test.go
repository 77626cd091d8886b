package service

import (
	"fmt"
	"math/rand"
	"testing"

	"editorial/internal/dto"
	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCounterRecompute(t *testing.T) {
	db := newTestDB(t)
	m := NewCounterMaintainer()

	author := seedAuthor(t, db, "author")
	require.NoError(t, db.Create(&model.ArticleAuthor{ArticleID: 1, AuthorID: author.ID, IsPrimary: true}).Error)
	require.NoError(t, db.Create(&model.ArticleAuthor{ArticleID: 2, AuthorID: author.ID, IsPrimary: true}).Error)

	// 人为写坏缓存，重算应自愈
	require.NoError(t, db.Model(&model.Author{}).Where("id = ?", author.ID).
		Update("article_count", 99).Error)

	require.NoError(t, m.RecomputeAuthorCount(db, author.ID))

	var got model.Author
	require.NoError(t, db.First(&got, author.ID).Error)
	assert.Equal(t, 2, got.ArticleCount)

	// 幂等
	require.NoError(t, m.RecomputeAuthorCount(db, author.ID))
	require.NoError(t, db.First(&got, author.ID).Error)
	assert.Equal(t, 2, got.ArticleCount)
}

func TestUnionIDs(t *testing.T) {
	assert.ElementsMatch(t, []uint{1, 2, 3}, unionIDs([]uint{1, 2}, []uint{2, 3}))
	assert.ElementsMatch(t, []uint{1}, unionIDs([]uint{1}, nil))
	assert.ElementsMatch(t, []uint{1}, unionIDs(nil, []uint{1, 1}))
	assert.Empty(t, unionIDs(nil, nil))
}

// TestCounterPropertyRandomOps 随机执行一串创建/更新/删除，每步后验证
// 所有缓存计数与关联表的实际行数一致
func TestCounterPropertyRandomOps(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)
	rng := rand.New(rand.NewSource(42))

	var authorIDs, categoryIDs, tagIDs []uint
	for i := 0; i < 4; i++ {
		authorIDs = append(authorIDs, seedAuthor(t, db, fmt.Sprintf("author-%d", i)).ID)
		categoryIDs = append(categoryIDs, seedCategory(t, db, fmt.Sprintf("category-%d", i), nil).ID)
		tagIDs = append(tagIDs, seedTag(t, db, fmt.Sprintf("tag-%d", i)).ID)
	}

	pick := func(pool []uint) []uint {
		n := 1 + rng.Intn(len(pool))
		perm := rng.Perm(len(pool))
		out := make([]uint, 0, n)
		for _, idx := range perm[:n] {
			out = append(out, pool[idx])
		}
		return out
	}

	var articleIDs []uint
	for step := 0; step < 60; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(articleIDs) == 0:
			req := draftRequest(fmt.Sprintf("article-%d", step), pick(authorIDs), pick(categoryIDs))
			req.TagIDs = pick(tagIDs)
			article, err := svc.Create(req)
			require.NoError(t, err)
			articleIDs = append(articleIDs, article.ID)
		case op == 1:
			id := articleIDs[rng.Intn(len(articleIDs))]
			_, err := svc.Update(id, &dto.ArticleUpdateRequest{
				AuthorIDs:   pick(authorIDs),
				CategoryIDs: pick(categoryIDs),
				TagIDs:      pick(tagIDs),
			})
			require.NoError(t, err)
		default:
			idx := rng.Intn(len(articleIDs))
			require.NoError(t, svc.Delete(articleIDs[idx]))
			articleIDs = append(articleIDs[:idx], articleIDs[idx+1:]...)
		}

		assertCountersConsistent(t, db, authorIDs, categoryIDs, tagIDs)
	}
}

// assertCountersConsistent 对比缓存计数和关联表COUNT
func assertCountersConsistent(t *testing.T, db *gorm.DB, authorIDs, categoryIDs, tagIDs []uint) {
	t.Helper()

	for _, id := range authorIDs {
		var live int64
		require.NoError(t, db.Model(&model.ArticleAuthor{}).Where("author_id = ?", id).Count(&live).Error)
		var author model.Author
		require.NoError(t, db.First(&author, id).Error)
		assert.Equal(t, int(live), author.ArticleCount, "author %d", id)
	}
	for _, id := range categoryIDs {
		var live int64
		require.NoError(t, db.Model(&model.ArticleCategory{}).Where("category_id = ?", id).Count(&live).Error)
		var category model.Category
		require.NoError(t, db.First(&category, id).Error)
		assert.Equal(t, int(live), category.ArticleCount, "category %d", id)
	}
	for _, id := range tagIDs {
		var live int64
		require.NoError(t, db.Model(&model.ArticleTag{}).Where("tag_id = ?", id).Count(&live).Error)
		var tag model.Tag
		require.NoError(t, db.First(&tag, id).Error)
		assert.Equal(t, int(live), tag.UsageCount, "tag %d", id)
	}
}
