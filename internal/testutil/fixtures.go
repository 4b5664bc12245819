package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tayo/teamwork-backend/internal/domain"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
	admin     bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		firstName: "Test",
		lastName:  "User",
		email:     fmt.Sprintf("testuser_%s@test.local", uuid.New().String()[:8]),
		password:  "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithAdmin marks the user as an admin
func (b *UserBuilder) WithAdmin() *UserBuilder {
	b.admin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		FirstName:    b.firstName,
		LastName:     b.lastName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Gender:       "male",
		JobRole:      "developer",
		Department:   "software",
		Address:      "1 Test Street",
		Admin:        b.admin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SignInResponse matches the API sign-in response data
type SignInResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token  string `json:"token"`
		UserID uint   `json:"userId"`
	} `json:"data"`
	Error string `json:"error"`
}

// BuildAndSignIn creates a user in the database and signs it in via the API,
// returning the user and a live token.
func (b *UserBuilder) BuildAndSignIn(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    user.Email,
		"password": rawPassword,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/signin"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign in user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code signing in: %d", resp.StatusCode)
	}

	var signInResp SignInResponse
	if err := json.NewDecoder(resp.Body).Decode(&signInResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, signInResp.Data.Token
}

// ArticleBuilder creates test articles with a builder pattern
type ArticleBuilder struct {
	title string
	body  string
}

// NewArticleBuilder creates a new ArticleBuilder with default values
func NewArticleBuilder() *ArticleBuilder {
	return &ArticleBuilder{
		title: "Test Article",
		body:  "Article body text",
	}
}

// WithTitle sets the title
func (b *ArticleBuilder) WithTitle(title string) *ArticleBuilder {
	b.title = title
	return b
}

// WithBody sets the article body
func (b *ArticleBuilder) WithBody(body string) *ArticleBuilder {
	b.body = body
	return b
}

// Build creates the article in the database
func (b *ArticleBuilder) Build(t *testing.T, db *gorm.DB) *domain.Article {
	t.Helper()

	article := &domain.Article{
		Title:     b.title,
		Body:      b.body,
		CreatedOn: time.Now(),
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	return article
}

// GifBuilder creates test gif rows with a builder pattern
type GifBuilder struct {
	title    string
	imageURL string
	publicID string
}

// NewGifBuilder creates a new GifBuilder with default values
func NewGifBuilder() *GifBuilder {
	key := fmt.Sprintf("gifs/test/%s", uuid.New())
	return &GifBuilder{
		title:    "Test Gif",
		imageURL: fmt.Sprintf("https://images.test.local/%s", key),
		publicID: key,
	}
}

// WithTitle sets the title
func (b *GifBuilder) WithTitle(title string) *GifBuilder {
	b.title = title
	return b
}

// WithPublicID sets the stored object key
func (b *GifBuilder) WithPublicID(publicID string) *GifBuilder {
	b.publicID = publicID
	return b
}

// Build creates the gif row in the database
func (b *GifBuilder) Build(t *testing.T, db *gorm.DB) *domain.Gif {
	t.Helper()

	gif := &domain.Gif{
		Title:     b.title,
		ImageURL:  b.imageURL,
		PublicID:  b.publicID,
		CreatedOn: time.Now(),
	}
	if err := db.Create(gif).Error; err != nil {
		t.Fatalf("failed to create gif: %v", err)
	}
	return gif
}
