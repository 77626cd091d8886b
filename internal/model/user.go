package model

// User 管理后台账号
type User struct {
	Base
	Username string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Nickname string `gorm:"type:varchar(50)" json:"nickname"`
	Role     string `gorm:"type:varchar(20);not null;default:'editor'" json:"role"` // editor admin
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
