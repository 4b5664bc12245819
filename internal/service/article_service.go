package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/repository"
)

type ArticleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// Feed returns every article, newest id first.
func (s *ArticleService) Feed(ctx context.Context) ([]*domain.Article, error) {
	return s.articleRepo.GetAll(ctx)
}

func (s *ArticleService) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, title, body string) (*domain.Article, error) {
	if title == "" || body == "" {
		return nil, domain.ErrMissingField
	}

	article := &domain.Article{
		Title:     title,
		Body:      body,
		CreatedOn: time.Now(),
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update replaces the mutable fields only; id, createdOn and the comment
// sequence stay untouched.
func (s *ArticleService) Update(ctx context.Context, id uint, title, body string) (*domain.Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Body = body
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrArticleNotFound
		}
		return err
	}
	return nil
}

// AddComment appends to the article's comment sequence and returns both the
// article and the new comment. Existing comments are never modified.
func (s *ArticleService) AddComment(ctx context.Context, id uint, body, authorID string) (*domain.Article, *domain.Comment, error) {
	if body == "" {
		return nil, nil, domain.ErrMissingField
	}

	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := domain.DecodeComments(article.Comments)
	if err != nil {
		return nil, nil, err
	}

	comment := domain.NewComment(article.ID, "article", body, authorID)
	comments = append(comments, comment)

	article.Comments, err = domain.EncodeComments(comments)
	if err != nil {
		return nil, nil, err
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, nil, err
	}
	return article, &comment, nil
}
