package storage

import (
	"context"
	"errors"

	"inkwell/internal/models"
)

var (
	// ErrNotFound is returned for lookups of records that do not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email twice.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateTitle is returned when a post title is already taken.
	ErrDuplicateTitle = errors.New("title already taken")
)

// Storage is the persistence contract shared by the Postgres store and
// the in-memory store used in tests.
type Storage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountUsers(ctx context.Context) (int64, error)

	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	// UpdatePost overwrites title, subtitle, img_url, body and author of
	// the stored post. ID, Date and CreatedAt are left untouched.
	UpdatePost(ctx context.Context, post *models.Post) error
	// DeletePost removes the post and all of its comments.
	DeletePost(ctx context.Context, id uint) error

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
}
