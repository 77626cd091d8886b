package service

import (
	"testing"
	"time"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestArticleCreateWithRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	a2 := seedAuthor(t, db, "a2")
	c1 := seedCategory(t, db, "c1", nil)

	req := draftRequest("Deep Dive Report", []uint{a1.ID, a2.ID}, []uint{c1.ID})
	req.PrimaryAuthorID = a1.ID
	req.PrimaryCategoryID = c1.ID

	article, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)

	// 计数全部为1
	for _, id := range []uint{a1.ID, a2.ID} {
		var author model.Author
		require.NoError(t, db.First(&author, id).Error)
		assert.Equal(t, 1, author.ArticleCount)
	}
	var category model.Category
	require.NoError(t, db.First(&category, c1.ID).Error)
	assert.Equal(t, 1, category.ArticleCount)

	// 恰好一行主作者且是a1
	var primaries []model.ArticleAuthor
	require.NoError(t, db.Where("article_id = ? AND is_primary = ?", article.ID, true).Find(&primaries).Error)
	require.Len(t, primaries, 1)
	assert.Equal(t, a1.ID, primaries[0].AuthorID)
}

func TestArticleCreateDefaultsPrimaryToFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	a2 := seedAuthor(t, db, "a2")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Primary Defaults First", []uint{a2.ID, a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	var primary model.ArticleAuthor
	require.NoError(t, db.Where("article_id = ? AND is_primary = ?", article.ID, true).First(&primary).Error)
	assert.Equal(t, a2.ID, primary.AuthorID)
}

func TestArticleCreatePrimaryNotInSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	a2 := seedAuthor(t, db, "a2")
	c1 := seedCategory(t, db, "c1", nil)

	req := draftRequest("Primary Outside Set", []uint{a1.ID}, []uint{c1.ID})
	req.PrimaryAuthorID = a2.ID

	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestArticleCreateSlugConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	_, err := svc.Create(draftRequest("Same Title Twice", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	_, err = svc.Create(draftRequest("Same Title Twice", []uint{a1.ID}, []uint{c1.ID}))
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestArticleCreateInactiveCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)
	require.NoError(t, db.Model(&model.Category{}).Where("id = ?", c1.ID).
		Update("is_active", 0).Error)

	_, err := svc.Create(draftRequest("Inactive Category Ref", []uint{a1.ID}, []uint{c1.ID}))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestArticleCreateMissingReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	req := draftRequest("Missing Tag Ref", []uint{a1.ID}, []uint{c1.ID})
	req.TagIDs = []uint{999}

	_, err := svc.Create(req)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// 校验失败时图不变：没有文章行也没有关联行
	var articleCount, joinCount int64
	require.NoError(t, db.Model(&model.Article{}).Count(&articleCount).Error)
	require.NoError(t, db.Model(&model.ArticleAuthor{}).Count(&joinCount).Error)
	assert.Zero(t, articleCount)
	assert.Zero(t, joinCount)
}

func TestArticlePublishRequiresExcerpt(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	req := draftRequest("No Excerpt Yet", []uint{a1.ID}, []uint{c1.ID})
	req.Excerpt = ""
	article, err := svc.Create(req)
	require.NoError(t, err)

	_, err = svc.Publish(article.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
	assert.Contains(t, err.Error(), "摘要")

	// 状态未变
	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, model.ArticleStatusDraft, got.Status)
	assert.Nil(t, got.PublishedAt)
}

func TestArticlePublishIdempotentPublishedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("First Publish", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	published, err := svc.Publish(article.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	time.Sleep(10 * time.Millisecond)
	again, err := svc.Publish(article.ID)
	require.NoError(t, err)
	assert.True(t, first.Equal(*again.PublishedAt))

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.True(t, first.Equal(*got.PublishedAt))
}

func TestArticleUpdateTagDiffRecount(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)
	t1 := seedTag(t, db, "t1")
	t2 := seedTag(t, db, "t2")
	t3 := seedTag(t, db, "t3")

	req := draftRequest("Tag Swap", []uint{a1.ID}, []uint{c1.ID})
	req.TagIDs = []uint{t1.ID, t2.ID}
	article, err := svc.Create(req)
	require.NoError(t, err)

	// 人为写坏作者计数，验证换标签不会触发作者重算
	require.NoError(t, db.Model(&model.Author{}).Where("id = ?", a1.ID).
		Update("article_count", 77).Error)

	_, err = svc.Update(article.ID, &dto.ArticleUpdateRequest{
		TagIDs: []uint{t2.ID, t3.ID},
	})
	require.NoError(t, err)

	var tags []model.Tag
	require.NoError(t, db.Order("id ASC").Find(&tags).Error)
	assert.Equal(t, 0, tags[0].UsageCount)
	assert.Equal(t, 1, tags[1].UsageCount)
	assert.Equal(t, 1, tags[2].UsageCount)

	var author model.Author
	require.NoError(t, db.First(&author, a1.ID).Error)
	assert.Equal(t, 77, author.ArticleCount, "换标签不应触发作者计数重算")
}

func TestArticleUpdateAbsentRelationsUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Title Only Update", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	newTitle := "改过的标题"
	_, err = svc.Update(article.ID, &dto.ArticleUpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	var joinCount int64
	require.NoError(t, db.Model(&model.ArticleAuthor{}).Where("article_id = ?", article.ID).Count(&joinCount).Error)
	assert.EqualValues(t, 1, joinCount)

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, newTitle, got.Title)
}

func TestArticleUpdatePublishedCannotBeInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Published Guard", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	_, err = svc.Publish(article.ID)
	require.NoError(t, err)

	// 把已发布文章的摘要清空应被拒绝
	empty := ""
	_, err = svc.Update(article.ID, &dto.ArticleUpdateRequest{Excerpt: &empty})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))

	var got model.Article
	require.NoError(t, db.First(&got, article.ID).Error)
	assert.Equal(t, "测试摘要", got.Excerpt)
}

func TestArticleUpdateAtomicOnMidTxFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	a2 := seedAuthor(t, db, "a2")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Atomic Update", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	snapshot := graphSnapshot(t, db)

	// 重复id能通过存在性校验，但插入关联行时撞复合主键，事务内失败
	_, err = svc.Update(article.ID, &dto.ArticleUpdateRequest{
		AuthorIDs: []uint{a2.ID, a2.ID},
	})
	require.Error(t, err)

	assert.Equal(t, snapshot, graphSnapshot(t, db), "失败的更新不应留下任何写入")
}

func TestArticleScheduleMustBeFuture(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Scheduled Story", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	_, err = svc.Schedule(article.ID, time.Now().Add(-time.Hour))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))

	scheduled, err := svc.Schedule(article.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusScheduled, scheduled.Status)
}

func TestArticleCreateScheduledRequiresTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	// 没有定时时间的scheduled文章调度器永远捡不到
	req := draftRequest("Scheduled Without Time", []uint{a1.ID}, []uint{c1.ID})
	req.Status = model.ArticleStatusScheduled
	_, err := svc.Create(req)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))

	req.ScheduledAt = futureTime()
	article, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusScheduled, article.Status)

	// 更新同样不能把文章改成没有定时时间的scheduled态
	draft, err := svc.Create(draftRequest("Draft To Schedule", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)
	scheduled := model.ArticleStatusScheduled
	_, err = svc.Update(draft.ID, &dto.ArticleUpdateRequest{Status: &scheduled})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestArticleDeleteRecountsAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)
	t1 := seedTag(t, db, "t1")

	req := draftRequest("Delete Recount", []uint{a1.ID}, []uint{c1.ID})
	req.TagIDs = []uint{t1.ID}
	article, err := svc.Create(req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(article.ID))

	var author model.Author
	require.NoError(t, db.First(&author, a1.ID).Error)
	assert.Zero(t, author.ArticleCount)

	var tag model.Tag
	require.NoError(t, db.First(&tag, t1.ID).Error)
	assert.Zero(t, tag.UsageCount)

	var joinCount int64
	require.NoError(t, db.Model(&model.ArticleTag{}).Count(&joinCount).Error)
	assert.Zero(t, joinCount)
}

func TestArticleArchiveTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db, nil, nil)

	a1 := seedAuthor(t, db, "a1")
	c1 := seedCategory(t, db, "c1", nil)

	article, err := svc.Create(draftRequest("Archive Flow", []uint{a1.ID}, []uint{c1.ID}))
	require.NoError(t, err)

	// 草稿不能直接归档
	_, err = svc.Archive(article.ID)
	require.Error(t, err)

	_, err = svc.Publish(article.ID)
	require.NoError(t, err)
	archived, err := svc.Archive(article.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusArchived, archived.Status)

	// 终态：归档后不能再发布
	_, err = svc.Publish(article.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodePreconditionFailed, apperr.CodeOf(err))
}

// graphSnapshot 抓取内容图的全部行，用于前后对比验证原子性
type snapshot struct {
	Articles   []model.Article
	Authors    []model.Author
	Categories []model.Category
	Tags       []model.Tag
	AuthorRows []model.ArticleAuthor
	CatRows    []model.ArticleCategory
	TagRows    []model.ArticleTag
}

func graphSnapshot(t *testing.T, db *gorm.DB) snapshot {
	t.Helper()
	var s snapshot
	require.NoError(t, db.Order("id").Find(&s.Articles).Error)
	require.NoError(t, db.Order("id").Find(&s.Authors).Error)
	require.NoError(t, db.Order("id").Find(&s.Categories).Error)
	require.NoError(t, db.Order("id").Find(&s.Tags).Error)
	require.NoError(t, db.Order("article_id, author_id").Find(&s.AuthorRows).Error)
	require.NoError(t, db.Order("article_id, category_id").Find(&s.CatRows).Error)
	require.NoError(t, db.Order("article_id, tag_id").Find(&s.TagRows).Error)
	return s
}
