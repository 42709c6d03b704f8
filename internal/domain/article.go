package domain

import "time"

// DateLayout 是 created_date 入参的固定格式（按 UTC 解析）
const DateLayout = "2006-01-02 15:04:05"

type Article struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string    `gorm:"size:36;index;not null" json:"owner_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Published   string    `gorm:"size:5;not null;default:'true'" json:"published"` // "true"/"false"
	CreatedDate time.Time `json:"created_date"`
}

func (Article) TableName() string { return "articles" }

// Identity 仅暴露所有权比较所需的 id
type Identity interface {
	UserID() string
}

type ArticleRepository interface {
	Create(a *Article) error
	FindByID(id string) (*Article, error)
	List() ([]Article, error)
	Update(a *Article) error
	Delete(id string) error
}
