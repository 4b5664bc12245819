package repository

import (
	"context"

	"github.com/tayo/teamwork-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	ExistsAdmin(ctx context.Context) (bool, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id uint) (*domain.Article, error)
	GetAll(ctx context.Context) ([]*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id uint) error
}

type GifRepository interface {
	Create(ctx context.Context, gif *domain.Gif) error
	GetByID(ctx context.Context, id uint) (*domain.Gif, error)
	GetAll(ctx context.Context) ([]*domain.Gif, error)
	Update(ctx context.Context, gif *domain.Gif) error
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User    UserRepository
	Article ArticleRepository
	Gif     GifRepository
}
