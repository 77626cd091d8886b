package dto

// AuthorCreateRequest 创建作者请求
type AuthorCreateRequest struct {
	Name   string `json:"name" binding:"required,max=50"`
	Slug   string `json:"slug" binding:"max=100"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
}

// AuthorUpdateRequest 更新作者请求
type AuthorUpdateRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=50"`
	Slug   *string `json:"slug" binding:"omitempty,max=100"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar" binding:"omitempty,url"`
}

// CategoryCreateRequest 创建分类请求
type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	IsActive    *int   `json:"is_active" binding:"omitempty,oneof=0 1"`
}

// CategoryUpdateRequest 更新分类请求
// ParentSet标记本次请求是否要改动父分类，区分"不改"和"改为根分类"
type CategoryUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	ParentID    *uint   `json:"parent_id"`
	ParentSet   bool    `json:"parent_set"`
	IsActive    *int    `json:"is_active" binding:"omitempty,oneof=0 1"`
}

// TagCreateRequest 创建标签请求
type TagCreateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"max=100"`
}

// TagUpdateRequest 更新标签请求
type TagUpdateRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
	Slug *string `json:"slug" binding:"omitempty,max=100"`
}

// PersonCreateRequest 创建人物请求
type PersonCreateRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Slug     string `json:"slug" binding:"max=100"`
	Title    string `json:"title" binding:"max=100"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}

// PersonUpdateRequest 更新人物请求
type PersonUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=50"`
	Slug     *string `json:"slug" binding:"omitempty,max=100"`
	Title    *string `json:"title" binding:"omitempty,max=100"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url" binding:"omitempty,url"`
}

// PageRequest 通用分页请求
type PageRequest struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=100"`
	Keyword  string `form:"keyword"`
}
