package postgres

import (
	"context"

	"github.com/tayo/teamwork-backend/internal/domain"
	"gorm.io/gorm"
)

type gifRepository struct {
	db *gorm.DB
}

func NewGifRepository(db *gorm.DB) *gifRepository {
	return &gifRepository{db: db}
}

func (r *gifRepository) Create(ctx context.Context, gif *domain.Gif) error {
	return r.db.WithContext(ctx).Create(gif).Error
}

func (r *gifRepository) GetByID(ctx context.Context, id uint) (*domain.Gif, error) {
	var gif domain.Gif
	err := r.db.WithContext(ctx).First(&gif, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gif, nil
}

func (r *gifRepository) GetAll(ctx context.Context) ([]*domain.Gif, error) {
	var gifs []*domain.Gif
	err := r.db.WithContext(ctx).Order("id DESC").Find(&gifs).Error
	if err != nil {
		return nil, err
	}
	return gifs, nil
}

func (r *gifRepository) Update(ctx context.Context, gif *domain.Gif) error {
	return r.db.WithContext(ctx).Save(gif).Error
}

func (r *gifRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Gif{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
