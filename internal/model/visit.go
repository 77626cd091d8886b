package model

import (
	"time"
)

// VisitLog 文章访问记录
type VisitLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	ArticleID uint      `gorm:"type:int(11);not null;index" json:"article_id"`
	IP        string    `gorm:"type:varchar(50)" json:"ip"`
	Region    string    `gorm:"type:varchar(100)" json:"region"`
	UserAgent string    `gorm:"type:varchar(255)" json:"user_agent"`
}

// TableName 指定表名
func (VisitLog) TableName() string {
	return "visit_logs"
}
