package memory

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *models.User) {
	t.Helper()
	store := New()
	user := &models.User{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "hash",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return store, user
}

func newTestPost(t *testing.T, store *Store, author *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:   author.ID,
		Title:    title,
		Subtitle: "A subtitle",
		Date:     "August 31, 2026",
		Body:     "Some **markdown** body",
		ImgURL:   "https://example.com/cover.jpg",
	}
	require.NoError(t, store.CreatePost(context.Background(), post))
	return post
}

func TestStore_DuplicateEmail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.CreateUser(ctx, &models.User{Name: "Imposter", Email: "a@x.com", Password: "hash"})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestStore_GetUser(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	byEmail, err := store.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = store.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_DuplicateTitle(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	newTestPost(t, store, user, "Hello")

	err := store.CreatePost(ctx, &models.Post{UserID: user.ID, Title: "Hello"})
	assert.ErrorIs(t, err, storage.ErrDuplicateTitle)

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestStore_UpdatePost(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	post := newTestPost(t, store, user, "Hello")

	updated := *post
	updated.Subtitle = "A better subtitle"
	require.NoError(t, store.UpdatePost(ctx, &updated))

	got, err := store.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "A better subtitle", got.Subtitle)
	// Identifier and display date never change on edit
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, post.Date, got.Date)

	err = store.UpdatePost(ctx, &models.Post{ID: 999, Title: "Ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_UpdatePost_DuplicateTitle(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	newTestPost(t, store, user, "First")
	second := newTestPost(t, store, user, "Second")

	second.Title = "First"
	err := store.UpdatePost(ctx, second)
	assert.ErrorIs(t, err, storage.ErrDuplicateTitle)

	got, err := store.GetPostByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestStore_DeletePost_CascadesComments(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	post := newTestPost(t, store, user, "Hello")

	require.NoError(t, store.CreateComment(ctx, &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   "First!",
	}))

	require.NoError(t, store.DeletePost(ctx, post.ID))

	_, err := store.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	comments, err := store.GetCommentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	err = store.DeletePost(ctx, post.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_ListPosts_NewestFirst(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	newTestPost(t, store, user, "Older")
	newTestPost(t, store, user, "Newer")

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Newer", posts[0].Title)
	assert.Equal(t, "Older", posts[1].Title)
	// Author association is populated for the list view
	assert.Equal(t, "Alice", posts[0].User.Name)
}

func TestStore_Comments_LinkUserAndPost(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()
	post := newTestPost(t, store, user, "Hello")

	comment := &models.Comment{PostID: post.ID, UserID: user.ID, Text: "Nice post"}
	require.NoError(t, store.CreateComment(ctx, comment))
	assert.NotZero(t, comment.ID)

	comments, err := store.GetCommentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, post.ID, comments[0].PostID)
	assert.Equal(t, user.ID, comments[0].UserID)
	assert.Equal(t, "Alice", comments[0].User.Name)

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].CommentCount)
}
