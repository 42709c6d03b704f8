package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/R15hav/blog/internal/domain"
)

type ArticleRepo struct{ db *gorm.DB }

var _ domain.ArticleRepository = (*ArticleRepo)(nil)

func NewArticleRepo(db *gorm.DB) *ArticleRepo { return &ArticleRepo{db: db} }

func (r *ArticleRepo) Create(a *domain.Article) error { return r.db.Create(a).Error }

// FindByID 查不到返回 (nil, nil)，由上层决定语义
func (r *ArticleRepo) FindByID(id string) (*domain.Article, error) {
	var a domain.Article
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List 按存储自然序返回全部记录，不排序不分页
func (r *ArticleRepo) List() ([]domain.Article, error) {
	var as []domain.Article
	if err := r.db.Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (r *ArticleRepo) Update(a *domain.Article) error { return r.db.Save(a).Error }

func (r *ArticleRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Article{}).Error
}
