package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/auth"
	"inkwell/internal/forms"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store storage.Storage
}

func NewAuthHandler(store storage.Storage) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "register.html", gin.H{"Form": forms.RegisterForm{}})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusOK, "register.html", gin.H{
			"Errors": forms.Errors(err),
			"Form":   form,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again.")
		return
	}

	// The first account to register becomes the admin.
	role := models.RoleUser
	if count, err := h.store.CountUsers(c.Request.Context()); err == nil && count == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: hash,
		Role:     role,
	}

	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			Flash(c, "Sorry, that email already exists.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again.")
		return
	}

	// Registration logs the new user straight in
	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "login.html", gin.H{"Form": forms.LoginForm{}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusOK, "login.html", gin.H{
			"Errors": forms.Errors(err),
			"Form":   form,
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), form.Email)
	if err != nil {
		// Unknown email and wrong password take the exact same path,
		// only the message differs.
		Render(c, http.StatusOK, "login.html", gin.H{
			"Error": "Sorry, that email doesn't exist in our records.",
			"Form":  form,
		})
		return
	}

	if !auth.CheckPassword(form.Password, user.Password) {
		Render(c, http.StatusOK, "login.html", gin.H{
			"Error": "Sorry, that's the wrong password.",
			"Form":  form,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
