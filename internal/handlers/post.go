package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/forms"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/render"
	"inkwell/internal/storage"

	"github.com/gin-gonic/gin"
)

const indexCacheKey = "posts:index"

type PostHandler struct {
	store     storage.Storage
	pageCache *cache.Cache
}

func NewPostHandler(store storage.Storage, pageCache *cache.Cache) *PostHandler {
	return &PostHandler{store: store, pageCache: pageCache}
}

// List renders the front page with all posts, newest first.
func (h *PostHandler) List(c *gin.Context) {
	if cached := h.pageCache.Get(indexCacheKey); cached != nil {
		if posts, ok := cached.([]models.Post); ok {
			Render(c, http.StatusOK, "index.html", gin.H{
				"Posts": posts,
				"Title": "Home",
			})
			return
		}
	}

	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load posts.")
		return
	}
	h.pageCache.Set(indexCacheKey, posts, 1*time.Minute)

	Render(c, http.StatusOK, "index.html", gin.H{
		"Posts": posts,
		"Title": "Home",
	})
}

// postID parses the :id route parameter.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func (h *PostHandler) Show(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	post, err := h.store.GetPostByID(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	h.renderDetail(c, post, nil)
}

// AddComment handles the comment form on the post detail page. The
// detail view is re-rendered either way.
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	post, err := h.store.GetPostByID(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderDetail(c, post, forms.Errors(err))
		return
	}

	user := middleware.CurrentUser(c)
	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   form.Text,
	}
	if err := h.store.CreateComment(c.Request.Context(), &comment); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save your comment.")
		return
	}

	h.renderDetail(c, post, nil)
}

type commentView struct {
	models.Comment
	TextHTML template.HTML
}

func (h *PostHandler) renderDetail(c *gin.Context, post *models.Post, formErrors map[string]string) {
	comments, err := h.store.GetCommentsByPostID(c.Request.Context(), post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load comments.")
		return
	}

	views := make([]commentView, len(comments))
	for i, com := range comments {
		views[i] = commentView{
			Comment:  com,
			TextHTML: render.Markdown(com.Text),
		}
	}

	Render(c, http.StatusOK, "post.html", gin.H{
		"Post":     post,
		"BodyHTML": render.Markdown(post.Body),
		"Comments": views,
		"Errors":   formErrors,
		"Title":    post.Title,
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "make-post.html", gin.H{
		"Title": "New Post",
		"Form":  forms.PostForm{},
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusOK, "make-post.html", gin.H{
			"Title":  "New Post",
			"Errors": forms.Errors(err),
			"Form":   form,
		})
		return
	}

	user := middleware.CurrentUser(c)
	post := models.Post{
		UserID:   user.ID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		Date:     time.Now().Format(models.PostDateFormat),
	}

	if err := h.store.CreatePost(c.Request.Context(), &post); err != nil {
		if errors.Is(err, storage.ErrDuplicateTitle) {
			Render(c, http.StatusOK, "make-post.html", gin.H{
				"Title": "New Post",
				"Error": "A post with that title already exists.",
				"Form":  form,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save the post.")
		return
	}

	h.pageCache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	post, err := h.store.GetPostByID(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	// Pre-fill the authoring form with the stored post
	Render(c, http.StatusOK, "make-post.html", gin.H{
		"Title":   "Edit Post",
		"Editing": true,
		"Post":    post,
		"Form": forms.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		},
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	post, err := h.store.GetPostByID(c.Request.Context(), id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusOK, "make-post.html", gin.H{
			"Title":   "Edit Post",
			"Editing": true,
			"Post":    post,
			"Errors":  forms.Errors(err),
			"Form":    form,
		})
		return
	}

	user := middleware.CurrentUser(c)
	post.UserID = user.ID
	post.Title = form.Title
	post.Subtitle = form.Subtitle
	post.Body = form.Body
	post.ImgURL = form.ImgURL

	if err := h.store.UpdatePost(c.Request.Context(), post); err != nil {
		if errors.Is(err, storage.ErrDuplicateTitle) {
			Render(c, http.StatusOK, "make-post.html", gin.H{
				"Title":   "Edit Post",
				"Editing": true,
				"Post":    post,
				"Error":   "A post with that title already exists.",
				"Form":    form,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save the post.")
		return
	}

	h.pageCache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/post/"+strconv.Itoa(int(post.ID)))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		RenderError(c, http.StatusNotFound, "That post doesn't exist.")
		return
	}

	if err := h.store.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "That post doesn't exist.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not delete the post.")
		return
	}

	h.pageCache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}
