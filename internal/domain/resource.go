package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Comment lives inside a resource row as part of a JSON column rather than
// its own table. The sequence is append-only: comments are never edited or
// deleted once posted, and order is insertion order.
type Comment struct {
	CommentID string `json:"commentId"`
	Comment   string `json:"comment"`
	AuthorID  string `json:"authorId"`
}

// NewComment derives the comment id from the owning resource id, the resource
// kind and the current millisecond timestamp, e.g. "7article1580910216762".
// The id is server-derived, never client-supplied.
func NewComment(resourceID uint, kind, body, authorID string) Comment {
	return Comment{
		CommentID: fmt.Sprintf("%d%s%d", resourceID, kind, time.Now().UnixMilli()),
		Comment:   body,
		AuthorID:  authorID,
	}
}

type Article struct {
	ID        uint           `json:"articleId" gorm:"primaryKey;autoIncrement"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"article" gorm:"column:article;not null"`
	Comments  datatypes.JSON `json:"comments" gorm:"default:'[]'"`
	CreatedOn time.Time      `json:"createdOn"`
}

type Gif struct {
	ID        uint           `json:"gifId" gorm:"primaryKey;autoIncrement"`
	Title     string         `json:"title" gorm:"not null"`
	ImageURL  string         `json:"imageUrl" gorm:"not null"`
	PublicID  string         `json:"-" gorm:"not null"`
	Comments  datatypes.JSON `json:"comments" gorm:"default:'[]'"`
	CreatedOn time.Time      `json:"createdOn"`
}

// DecodeComments unmarshals a resource's comment column. An empty or null
// column decodes to an empty slice.
func DecodeComments(raw datatypes.JSON) ([]Comment, error) {
	if len(raw) == 0 {
		return []Comment{}, nil
	}
	var comments []Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}

// EncodeComments marshals a comment slice back into the JSON column form.
func EncodeComments(comments []Comment) (datatypes.JSON, error) {
	raw, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
