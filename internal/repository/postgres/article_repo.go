package postgres

import (
	"context"

	"github.com/tayo/teamwork-backend/internal/domain"
	"gorm.io/gorm"
)

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetAll(ctx context.Context) ([]*domain.Article, error) {
	var articles []*domain.Article
	err := r.db.WithContext(ctx).Order("id DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Article{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	// A concurrent delete on the same id leaves RowsAffected at zero for the
	// losing caller; surface that as record-not-found.
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
