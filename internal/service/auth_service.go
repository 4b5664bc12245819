package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/repository"
	"github.com/tayo/teamwork-backend/internal/token"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type CreateUserInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Gender     string
	JobRole    string
	Department string
	Address    string
	Admin      bool
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// SignIn never tells the caller whether the email was unknown or the password
// wrong; both collapse into domain.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// CreateUser persists a new account and returns a token minted for the new
// user, not for the admin who created it.
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*AuthResult, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingField
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Gender:       input.Gender,
		JobRole:      input.JobRole,
		Department:   input.Department,
		Address:      input.Address,
		Admin:        input.Admin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: tok}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
