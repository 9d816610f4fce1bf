package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/storage"
)

// Store is an in-memory storage.Storage used by the test suites. It
// mirrors the Postgres store's semantics, including the unique email
// and title constraints and the comment cascade on post deletion.
type Store struct {
	mu sync.RWMutex

	users    map[uint]*models.User
	posts    map[uint]*models.Post
	comments map[uint]*models.Comment

	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
}

func New() *Store {
	return &Store{
		users:         make(map[uint]*models.User),
		posts:         make(map[uint]*models.Post),
		comments:      make(map[uint]*models.Comment),
		nextUserID:    1,
		nextPostID:    1,
		nextCommentID: 1,
	}
}

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = time.Now()

	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) CountUsers(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *Store) CreatePost(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Title == post.Title {
			return storage.ErrDuplicateTitle
		}
	}

	post.ID = s.nextPostID
	s.nextPostID++
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *Store) GetPostByID(_ context.Context, id uint) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *post
	if author, ok := s.users[cp.UserID]; ok {
		cp.User = *author
	}
	return &cp, nil
}

func (s *Store) ListPosts(_ context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		if author, ok := s.users[cp.UserID]; ok {
			cp.User = *author
		}
		for _, c := range s.comments {
			if c.PostID == cp.ID {
				cp.CommentCount++
			}
		}
		posts = append(posts, cp)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *Store) UpdatePost(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[post.ID]
	if !ok {
		return storage.ErrNotFound
	}
	for _, p := range s.posts {
		if p.ID != post.ID && p.Title == post.Title {
			return storage.ErrDuplicateTitle
		}
	}

	stored.UserID = post.UserID
	stored.Title = post.Title
	stored.Subtitle = post.Subtitle
	stored.Body = post.Body
	stored.ImgURL = post.ImgURL
	stored.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeletePost(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *Store) CreateComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextCommentID
	s.nextCommentID++
	comment.CreatedAt = time.Now()

	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (s *Store) GetCommentsByPostID(_ context.Context, postID uint) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []models.Comment
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		cp := *c
		if author, ok := s.users[cp.UserID]; ok {
			cp.User = *author
		}
		comments = append(comments, cp)
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}
