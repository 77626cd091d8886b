package service

import (
	"fmt"
	"time"

	"editorial/internal/apperr"
	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/model"

	"gorm.io/gorm"
)

// ArticleService 内容图变更的唯一入口
// 文章行、关联行和计数的所有写入都收敛在这里的单事务内完成，
// slug分配、层级校验、计数维护、生命周期守卫都由它调度，互相不直接调用
type ArticleService struct {
	db        *gorm.DB
	slugs     *SlugAllocator
	counters  *CounterMaintainer
	guard     *LifecycleGuard
	search    *SearchService
	sensitive *SensitiveService
}

// NewArticleService 创建文章服务，search和sensitive允许传nil表示关闭对应能力
func NewArticleService(db *gorm.DB, search *SearchService, sensitive *SensitiveService) *ArticleService {
	return &ArticleService{
		db:        db,
		slugs:     NewSlugAllocator(),
		counters:  NewCounterMaintainer(),
		guard:     NewLifecycleGuard(),
		search:    search,
		sensitive: sensitive,
	}
}

// Create 创建文章及其全部关联行，原子提交
// 校验顺序：slug → 主作者/主分类在集合内 → 引用实体存在且分类启用 → 定时时间 → 发布要求
func (s *ArticleService) Create(req *dto.ArticleCreateRequest) (*model.Article, error) {
	status := req.Status
	if status == "" {
		status = model.ArticleStatusDraft
	}

	slug := req.Slug
	if slug == "" {
		slug = s.slugs.Normalize(req.Title)
	} else {
		slug = s.slugs.Normalize(slug)
	}
	if err := s.slugs.EnsureUnique(s.db, apperr.KindArticle, slug, 0); err != nil {
		return nil, err
	}

	primaryAuthor := req.PrimaryAuthorID
	if primaryAuthor == 0 && len(req.AuthorIDs) > 0 {
		primaryAuthor = req.AuthorIDs[0]
	}
	primaryCategory := req.PrimaryCategoryID
	if primaryCategory == 0 && len(req.CategoryIDs) > 0 {
		primaryCategory = req.CategoryIDs[0]
	}
	if err := validatePrimaryInSet(apperr.KindAuthor, primaryAuthor, req.AuthorIDs); err != nil {
		return nil, err
	}
	if err := validatePrimaryInSet(apperr.KindCategory, primaryCategory, req.CategoryIDs); err != nil {
		return nil, err
	}

	if err := s.validateReferences(req.AuthorIDs, req.CategoryIDs, req.TagIDs, req.PersonIDs); err != nil {
		return nil, err
	}

	if err := s.guard.ValidateSchedule(slug, req.ScheduledAt); err != nil {
		return nil, err
	}
	// 没有定时时间的scheduled文章永远不会被调度器捡起
	if status == model.ArticleStatusScheduled && req.ScheduledAt == nil {
		return nil, apperr.InvalidArgument(apperr.KindArticle, slug, "定时发布必须指定发布时间")
	}

	article := &model.Article{
		Title:       req.Title,
		Slug:        slug,
		Subtitle:    req.Subtitle,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		Status:      status,
		ScheduledAt: req.ScheduledAt,
	}

	if status == model.ArticleStatusPublished {
		if err := s.guard.ValidatePublishable(slug, article.Title, article.Excerpt, article.Content,
			len(req.AuthorIDs), len(req.CategoryIDs)); err != nil {
			return nil, err
		}
		if err := s.sensitive.ScanArticle(slug, article.Title, article.Excerpt, article.Content); err != nil {
			return nil, err
		}
		s.guard.StampPublishedAt(article)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return apperr.FromStorage(err, apperr.KindArticle, slug)
		}
		if err := s.insertRelations(tx, article.ID, req.AuthorIDs, primaryAuthor,
			req.CategoryIDs, primaryCategory, req.TagIDs, req.PersonIDs); err != nil {
			return err
		}
		return s.counters.RecomputeAll(tx, req.AuthorIDs, req.CategoryIDs, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	s.indexAsync(article.ID)
	return article, nil
}

// Update 更新文章，关系集合采用差异替换
// 请求里出现的关系种类整体删旧插新并重算新旧id并集的计数，未出现的种类不触碰
func (s *ArticleService) Update(id uint, req *dto.ArticleUpdateRequest) (*model.Article, error) {
	ref := fmt.Sprint(id)

	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, ref)
	}

	newSlug := article.Slug
	if req.Slug != nil {
		newSlug = s.slugs.Normalize(*req.Slug)
		if newSlug != article.Slug {
			if err := s.slugs.EnsureUnique(s.db, apperr.KindArticle, newSlug, id); err != nil {
				return nil, err
			}
		}
	}

	// 收集更新后各关系的生效id集合，nil表示本次未改动
	oldAuthorIDs, err := s.relationAuthorIDs(s.db, id)
	if err != nil {
		return nil, err
	}
	oldCategoryIDs, err := s.relationCategoryIDs(s.db, id)
	if err != nil {
		return nil, err
	}
	oldTagIDs, err := s.relationTagIDs(s.db, id)
	if err != nil {
		return nil, err
	}

	effectiveAuthors := oldAuthorIDs
	primaryAuthor := uint(0)
	if req.AuthorIDs != nil {
		effectiveAuthors = req.AuthorIDs
		primaryAuthor = req.PrimaryAuthorID
		if primaryAuthor == 0 && len(req.AuthorIDs) > 0 {
			primaryAuthor = req.AuthorIDs[0]
		}
		if err := validatePrimaryInSet(apperr.KindAuthor, primaryAuthor, req.AuthorIDs); err != nil {
			return nil, err
		}
	}
	effectiveCategories := oldCategoryIDs
	primaryCategory := uint(0)
	if req.CategoryIDs != nil {
		effectiveCategories = req.CategoryIDs
		primaryCategory = req.PrimaryCategoryID
		if primaryCategory == 0 && len(req.CategoryIDs) > 0 {
			primaryCategory = req.CategoryIDs[0]
		}
		if err := validatePrimaryInSet(apperr.KindCategory, primaryCategory, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if err := s.validateReferences(req.AuthorIDs, req.CategoryIDs, req.TagIDs, req.PersonIDs); err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		if err := s.guard.ValidateSchedule(ref, req.ScheduledAt); err != nil {
			return nil, err
		}
	}

	newStatus := article.Status
	if req.Status != nil {
		newStatus = *req.Status
		if err := s.guard.ValidateTransition(ref, article.Status, newStatus); err != nil {
			return nil, err
		}
	}

	// 应用字段变更到内存副本，发布校验针对变更后的内容
	updated := article
	updated.Slug = newSlug
	updated.Status = newStatus
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Subtitle != nil {
		updated.Subtitle = *req.Subtitle
	}
	if req.Excerpt != nil {
		updated.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.CoverImage != nil {
		updated.CoverImage = *req.CoverImage
	}
	if req.ScheduledAt != nil {
		updated.ScheduledAt = req.ScheduledAt
	}
	if newStatus == model.ArticleStatusScheduled && updated.ScheduledAt == nil {
		return nil, apperr.InvalidArgument(apperr.KindArticle, ref, "定时发布必须指定发布时间")
	}

	// 进入或停留在已发布态都要重新校验，已发布的文章不能被改成不合规内容
	if newStatus == model.ArticleStatusPublished {
		if err := s.guard.ValidatePublishable(ref, updated.Title, updated.Excerpt, updated.Content,
			len(effectiveAuthors), len(effectiveCategories)); err != nil {
			return nil, err
		}
		if err := s.sensitive.ScanArticle(ref, updated.Title, updated.Excerpt, updated.Content); err != nil {
			return nil, err
		}
		s.guard.StampPublishedAt(&updated)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Article{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":        updated.Title,
				"slug":         updated.Slug,
				"subtitle":     updated.Subtitle,
				"excerpt":      updated.Excerpt,
				"content":      updated.Content,
				"cover_image":  updated.CoverImage,
				"status":       updated.Status,
				"scheduled_at": updated.ScheduledAt,
				"published_at": updated.PublishedAt,
			}).Error; err != nil {
			return apperr.FromStorage(err, apperr.KindArticle, ref)
		}

		var recountAuthors, recountCategories, recountTags []uint
		if req.AuthorIDs != nil {
			if err := s.replaceAuthors(tx, id, req.AuthorIDs, primaryAuthor); err != nil {
				return err
			}
			recountAuthors = unionIDs(oldAuthorIDs, req.AuthorIDs)
		}
		if req.CategoryIDs != nil {
			if err := s.replaceCategories(tx, id, req.CategoryIDs, primaryCategory); err != nil {
				return err
			}
			recountCategories = unionIDs(oldCategoryIDs, req.CategoryIDs)
		}
		if req.TagIDs != nil {
			if err := s.replaceTags(tx, id, req.TagIDs); err != nil {
				return err
			}
			recountTags = unionIDs(oldTagIDs, req.TagIDs)
		}
		if req.PersonIDs != nil {
			if err := s.replacePeople(tx, id, req.PersonIDs); err != nil {
				return err
			}
		}
		return s.counters.RecomputeAll(tx, recountAuthors, recountCategories, recountTags)
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, ref)
	}
	s.indexAsync(id)
	return &article, nil
}

// Delete 删除文章，先捕获关联id再删行，最后重算被摘除实体的计数
func (s *ArticleService) Delete(id uint) error {
	ref := fmt.Sprint(id)

	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindArticle, ref)
	}

	authorIDs, err := s.relationAuthorIDs(s.db, id)
	if err != nil {
		return err
	}
	categoryIDs, err := s.relationCategoryIDs(s.db, id)
	if err != nil {
		return err
	}
	tagIDs, err := s.relationTagIDs(s.db, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleAuthor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticlePerson{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Article{}, id).Error; err != nil {
			return err
		}
		return s.counters.RecomputeAll(tx, authorIDs, categoryIDs, tagIDs)
	})
	if err != nil {
		return err
	}

	s.removeIndexAsync(id)
	return nil
}

// Publish 将文章置为已发布，对已发布文章幂等
func (s *ArticleService) Publish(id uint) (*model.Article, error) {
	ref := fmt.Sprint(id)

	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, ref)
	}
	if article.IsPublished() {
		return &article, nil
	}
	if err := s.guard.ValidateTransition(ref, article.Status, model.ArticleStatusPublished); err != nil {
		return nil, err
	}

	authorCount, categoryCount, err := s.relationCounts(id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.ValidatePublishable(ref, article.Title, article.Excerpt, article.Content,
		authorCount, categoryCount); err != nil {
		return nil, err
	}
	if err := s.sensitive.ScanArticle(ref, article.Title, article.Excerpt, article.Content); err != nil {
		return nil, err
	}

	article.Status = model.ArticleStatusPublished
	s.guard.StampPublishedAt(&article)

	err = s.db.Model(&model.Article{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       article.Status,
			"published_at": article.PublishedAt,
		}).Error
	if err != nil {
		return nil, err
	}

	s.indexAsync(id)
	return &article, nil
}

// Archive 归档文章，归档是单向退役，没有回头路
func (s *ArticleService) Archive(id uint) (*model.Article, error) {
	ref := fmt.Sprint(id)

	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, ref)
	}
	if err := s.guard.ValidateTransition(ref, article.Status, model.ArticleStatusArchived); err != nil {
		return nil, err
	}

	article.Status = model.ArticleStatusArchived
	if err := s.db.Model(&model.Article{}).Where("id = ?", id).
		Update("status", article.Status).Error; err != nil {
		return nil, err
	}

	s.removeIndexAsync(id)
	return &article, nil
}

// Schedule 设置文章定时发布
func (s *ArticleService) Schedule(id uint, scheduledAt time.Time) (*model.Article, error) {
	ref := fmt.Sprint(id)

	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, ref)
	}
	if err := s.guard.ValidateTransition(ref, article.Status, model.ArticleStatusScheduled); err != nil {
		return nil, err
	}
	if err := s.guard.ValidateSchedule(ref, &scheduledAt); err != nil {
		return nil, err
	}

	article.Status = model.ArticleStatusScheduled
	article.ScheduledAt = &scheduledAt
	err := s.db.Model(&model.Article{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       article.Status,
			"scheduled_at": article.ScheduledAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// SetFeatured 设置推荐标记
func (s *ArticleService) SetFeatured(id uint, value int) error {
	return s.setFlag(id, "is_featured", value)
}

// SetTrending 设置热门标记
func (s *ArticleService) SetTrending(id uint, value int) error {
	return s.setFlag(id, "is_trending", value)
}

func (s *ArticleService) setFlag(id uint, column string, value int) error {
	result := s.db.Model(&model.Article{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(apperr.KindArticle, fmt.Sprint(id))
	}
	return nil
}

// List 分页查询文章列表
func (s *ArticleService) List(req *dto.ArticleListRequest) ([]dto.ArticleListItem, int64, error) {
	query := s.db.Model(&model.Article{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Keyword != "" {
		like := "%" + req.Keyword + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ?", like, like)
	}
	if req.IsFeatured != nil {
		query = query.Where("is_featured = ?", *req.IsFeatured)
	}
	if req.IsTrending != nil {
		query = query.Where("is_trending = ?", *req.IsTrending)
	}
	if req.AuthorID > 0 {
		query = query.Where("id IN (?)",
			s.db.Model(&model.ArticleAuthor{}).Select("article_id").Where("author_id = ?", req.AuthorID))
	}
	if req.CategoryID > 0 {
		query = query.Where("id IN (?)",
			s.db.Model(&model.ArticleCategory{}).Select("article_id").Where("category_id = ?", req.CategoryID))
	}
	if req.TagID > 0 {
		query = query.Where("id IN (?)",
			s.db.Model(&model.ArticleTag{}).Select("article_id").Where("tag_id = ?", req.TagID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := query.Order("created_at DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ArticleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ArticleListItem{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Subtitle:    a.Subtitle,
			Excerpt:     a.Excerpt,
			CoverImage:  a.CoverImage,
			Status:      a.Status,
			PublishedAt: a.PublishedAt,
			ViewCount:   a.ViewCount,
			IsFeatured:  a.IsFeatured,
			IsTrending:  a.IsTrending,
			CreatedAt:   a.CreatedAt,
		})
	}
	return items, total, nil
}

// Detail 按id查询文章详情及全部关联实体
func (s *ArticleService) Detail(id uint) (*dto.ArticleResponse, error) {
	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, fmt.Sprint(id))
	}
	return s.buildDetail(&article)
}

// DetailBySlug 按slug查询文章详情
func (s *ArticleService) DetailBySlug(slug string) (*dto.ArticleResponse, error) {
	var article model.Article
	if err := s.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindArticle, slug)
	}
	return s.buildDetail(&article)
}

func (s *ArticleService) buildDetail(article *model.Article) (*dto.ArticleResponse, error) {
	resp := &dto.ArticleResponse{
		Article:    *article,
		Authors:    []dto.AuthorBrief{},
		Categories: []dto.CategoryBrief{},
		Tags:       []dto.TagBrief{},
		People:     []dto.PersonBrief{},
	}

	var authorRows []model.ArticleAuthor
	if err := s.db.Where("article_id = ?", article.ID).Order("sort_order").Find(&authorRows).Error; err != nil {
		return nil, err
	}
	for _, row := range authorRows {
		var author model.Author
		if err := s.db.First(&author, row.AuthorID).Error; err != nil {
			return nil, err
		}
		resp.Authors = append(resp.Authors, dto.AuthorBrief{
			ID: author.ID, Name: author.Name, Slug: author.Slug,
			Avatar: author.Avatar, IsPrimary: row.IsPrimary, SortOrder: row.SortOrder,
		})
	}

	var categoryRows []model.ArticleCategory
	if err := s.db.Where("article_id = ?", article.ID).Find(&categoryRows).Error; err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		var category model.Category
		if err := s.db.First(&category, row.CategoryID).Error; err != nil {
			return nil, err
		}
		resp.Categories = append(resp.Categories, dto.CategoryBrief{
			ID: category.ID, Name: category.Name, Slug: category.Slug, IsPrimary: row.IsPrimary,
		})
	}

	var tags []model.Tag
	err := s.db.Where("id IN (?)",
		s.db.Model(&model.ArticleTag{}).Select("tag_id").Where("article_id = ?", article.ID)).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, dto.TagBrief{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	var people []model.Person
	err = s.db.Where("id IN (?)",
		s.db.Model(&model.ArticlePerson{}).Select("person_id").Where("article_id = ?", article.ID)).
		Find(&people).Error
	if err != nil {
		return nil, err
	}
	for _, p := range people {
		resp.People = append(resp.People, dto.PersonBrief{ID: p.ID, Name: p.Name, Slug: p.Slug})
	}

	return resp, nil
}

// validatePrimaryInSet 主实体必须是所选集合的成员
func validatePrimaryInSet(kind string, primaryID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if id == primaryID {
			return nil
		}
	}
	return apperr.InvalidArgument(kind, fmt.Sprint(primaryID),
		fmt.Sprintf("主%s必须在已选%s列表内", apperr.KindName(kind), apperr.KindName(kind)))
}

// validateReferences 校验引用的实体id全部存在，且引用的分类处于启用状态
// nil切片表示本次未涉及该种实体
func (s *ArticleService) validateReferences(authorIDs, categoryIDs, tagIDs, personIDs []uint) error {
	if err := s.checkIDsExist(&model.Author{}, apperr.KindAuthor, authorIDs); err != nil {
		return err
	}
	if len(categoryIDs) > 0 {
		var categories []model.Category
		if err := s.db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
			return err
		}
		found := make(map[uint]*model.Category, len(categories))
		for i := range categories {
			found[categories[i].ID] = &categories[i]
		}
		for _, id := range categoryIDs {
			c, ok := found[id]
			if !ok {
				return apperr.NotFound(apperr.KindCategory, fmt.Sprint(id))
			}
			if c.IsActive != 1 {
				return apperr.InvalidArgument(apperr.KindCategory, fmt.Sprint(id),
					fmt.Sprintf("分类已停用，不能关联: %s", c.Name))
			}
		}
	}
	if err := s.checkIDsExist(&model.Tag{}, apperr.KindTag, tagIDs); err != nil {
		return err
	}
	return s.checkIDsExist(&model.Person{}, apperr.KindPerson, personIDs)
}

func (s *ArticleService) checkIDsExist(m interface{}, kind string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var existing []uint
	if err := s.db.Model(m).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return err
	}
	found := make(map[uint]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	for _, id := range ids {
		if !found[id] {
			return apperr.NotFound(kind, fmt.Sprint(id))
		}
	}
	return nil
}

// insertRelations 批量插入四种关联行
func (s *ArticleService) insertRelations(tx *gorm.DB, articleID uint,
	authorIDs []uint, primaryAuthor uint,
	categoryIDs []uint, primaryCategory uint,
	tagIDs, personIDs []uint) error {
	if err := s.replaceAuthors(tx, articleID, authorIDs, primaryAuthor); err != nil {
		return err
	}
	if err := s.replaceCategories(tx, articleID, categoryIDs, primaryCategory); err != nil {
		return err
	}
	if err := s.replaceTags(tx, articleID, tagIDs); err != nil {
		return err
	}
	return s.replacePeople(tx, articleID, personIDs)
}

func (s *ArticleService) replaceAuthors(tx *gorm.DB, articleID uint, authorIDs []uint, primaryID uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticleAuthor{}).Error; err != nil {
		return err
	}
	if len(authorIDs) == 0 {
		return nil
	}
	rows := make([]model.ArticleAuthor, 0, len(authorIDs))
	for i, id := range authorIDs {
		rows = append(rows, model.ArticleAuthor{
			ArticleID: articleID,
			AuthorID:  id,
			SortOrder: i,
			IsPrimary: id == primaryID,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindAuthor, fmt.Sprint(articleID))
	}
	return nil
}

func (s *ArticleService) replaceCategories(tx *gorm.DB, articleID uint, categoryIDs []uint, primaryID uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticleCategory{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]model.ArticleCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		rows = append(rows, model.ArticleCategory{
			ArticleID:  articleID,
			CategoryID: id,
			IsPrimary:  id == primaryID,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindCategory, fmt.Sprint(articleID))
	}
	return nil
}

func (s *ArticleService) replaceTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticleTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.ArticleTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, model.ArticleTag{ArticleID: articleID, TagID: id})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindTag, fmt.Sprint(articleID))
	}
	return nil
}

func (s *ArticleService) replacePeople(tx *gorm.DB, articleID uint, personIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&model.ArticlePerson{}).Error; err != nil {
		return err
	}
	if len(personIDs) == 0 {
		return nil
	}
	rows := make([]model.ArticlePerson, 0, len(personIDs))
	for _, id := range personIDs {
		rows = append(rows, model.ArticlePerson{ArticleID: articleID, PersonID: id})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.FromStorage(err, apperr.KindPerson, fmt.Sprint(articleID))
	}
	return nil
}

func (s *ArticleService) relationAuthorIDs(tx *gorm.DB, articleID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.ArticleAuthor{}).Where("article_id = ?", articleID).Pluck("author_id", &ids).Error
	return ids, err
}

func (s *ArticleService) relationCategoryIDs(tx *gorm.DB, articleID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.ArticleCategory{}).Where("article_id = ?", articleID).Pluck("category_id", &ids).Error
	return ids, err
}

func (s *ArticleService) relationTagIDs(tx *gorm.DB, articleID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.ArticleTag{}).Where("article_id = ?", articleID).Pluck("tag_id", &ids).Error
	return ids, err
}

func (s *ArticleService) relationCounts(articleID uint) (int, int, error) {
	var authorCount, categoryCount int64
	if err := s.db.Model(&model.ArticleAuthor{}).Where("article_id = ?", articleID).Count(&authorCount).Error; err != nil {
		return 0, 0, err
	}
	if err := s.db.Model(&model.ArticleCategory{}).Where("article_id = ?", articleID).Count(&categoryCount).Error; err != nil {
		return 0, 0, err
	}
	return int(authorCount), int(categoryCount), nil
}

// indexAsync 提交后异步同步搜索索引，失败只记日志不影响主流程
func (s *ArticleService) indexAsync(articleID uint) {
	if s.search == nil {
		return
	}
	go func() {
		if err := s.search.IndexArticle(articleID); err != nil {
			logger.GetSugaredLogger().Errorf("同步文章搜索索引失败 article_id=%d err=%v", articleID, err)
		}
	}()
}

// removeIndexAsync 提交后异步移除搜索索引
func (s *ArticleService) removeIndexAsync(articleID uint) {
	if s.search == nil {
		return
	}
	go func() {
		if err := s.search.RemoveArticle(articleID); err != nil {
			logger.GetSugaredLogger().Errorf("移除文章搜索索引失败 article_id=%d err=%v", articleID, err)
		}
	}()
}
