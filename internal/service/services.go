package service

import (
	"github.com/tayo/teamwork-backend/internal/config"
	"github.com/tayo/teamwork-backend/internal/repository"
	"github.com/tayo/teamwork-backend/internal/token"
	"github.com/tayo/teamwork-backend/internal/upload"
)

type Services struct {
	Auth    *AuthService
	Article *ArticleService
	Gif     *GifService
	Tokens  *token.Manager
}

func NewServices(repos *repository.Repositories, uploader upload.Uploader, cfg *config.Config) *Services {
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	return &Services{
		Auth:    NewAuthService(repos.User, tokens),
		Article: NewArticleService(repos.Article),
		Gif:     NewGifService(repos.Gif, uploader),
		Tokens:  tokens,
	}
}
