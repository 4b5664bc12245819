package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/repository"
	"github.com/tayo/teamwork-backend/internal/upload"
)

var ErrNotGif = errors.New("must select a gif image to upload")

type GifService struct {
	gifRepo  repository.GifRepository
	uploader upload.Uploader
}

func NewGifService(gifRepo repository.GifRepository, uploader upload.Uploader) *GifService {
	return &GifService{
		gifRepo:  gifRepo,
		uploader: uploader,
	}
}

func (s *GifService) Feed(ctx context.Context) ([]*domain.Gif, error) {
	return s.gifRepo.GetAll(ctx)
}

func (s *GifService) GetByID(ctx context.Context, id uint) (*domain.Gif, error) {
	gif, err := s.gifRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGifNotFound
		}
		return nil, err
	}
	return gif, nil
}

// Create uploads the image first and persists the row second. The two steps
// are not atomic: when the insert fails after a successful upload, the stored
// object is removed again as a compensating action. If that removal also
// fails, both errors are reported together.
func (s *GifService) Create(ctx context.Context, title, filename string, image io.Reader) (*domain.Gif, error) {
	if title == "" {
		return nil, domain.ErrMissingField
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".gif") {
		return nil, ErrNotGif
	}

	result, err := s.uploader.Upload(ctx, filename, image)
	if err != nil {
		return nil, fmt.Errorf("uploading gif image: %w", err)
	}

	gif := &domain.Gif{
		Title:     title,
		ImageURL:  result.URL,
		PublicID:  result.PublicID,
		CreatedOn: time.Now(),
	}

	if err := s.gifRepo.Create(ctx, gif); err != nil {
		createErr := fmt.Errorf("persisting gif after upload: %w", err)
		if removeErr := s.uploader.Remove(ctx, result.PublicID); removeErr != nil {
			return nil, errors.Join(createErr, fmt.Errorf("compensating image removal failed: %w", removeErr))
		}
		return nil, createErr
	}

	return gif, nil
}

// Delete removes the row and then the stored image. Image removal is
// best-effort: a failure is logged and the delete still succeeds.
func (s *GifService) Delete(ctx context.Context, id uint) error {
	gif, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gifRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGifNotFound
		}
		return err
	}

	if err := s.uploader.Remove(ctx, gif.PublicID); err != nil {
		log.Printf("ERROR [service.GifService.Delete] removing image %s: %v", gif.PublicID, err)
	}
	return nil
}

func (s *GifService) AddComment(ctx context.Context, id uint, body, authorID string) (*domain.Gif, *domain.Comment, error) {
	if body == "" {
		return nil, nil, domain.ErrMissingField
	}

	gif, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := domain.DecodeComments(gif.Comments)
	if err != nil {
		return nil, nil, err
	}

	comment := domain.NewComment(gif.ID, "gif", body, authorID)
	comments = append(comments, comment)

	gif.Comments, err = domain.EncodeComments(comments)
	if err != nil {
		return nil, nil, err
	}

	if err := s.gifRepo.Update(ctx, gif); err != nil {
		return nil, nil, err
	}
	return gif, &comment, nil
}
