package model

// Person 报道人物模型，没有缓存计数
type Person struct {
	Base
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Title    string `gorm:"type:varchar(100)" json:"title"` // 头衔/职位
	Bio      string `gorm:"type:text" json:"bio"`
	PhotoURL string `gorm:"type:varchar(255)" json:"photo_url"`
}

// TableName 指定表名
func (Person) TableName() string {
	return "people"
}
