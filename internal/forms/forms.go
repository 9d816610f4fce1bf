package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// The four input schemas of the site. Binding tags drive gin's form
// binding and the validator behind it.

type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

// Errors turns a binding error into per-field messages keyed by struct
// field name, for inline display on the re-rendered form.
func Errors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["Form"] = "Invalid form submission."
		return fieldErrors
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = "This field is required."
		case "email":
			fieldErrors[fe.Field()] = "Enter a valid email address."
		case "url":
			fieldErrors[fe.Field()] = "Enter a valid URL."
		default:
			fieldErrors[fe.Field()] = "This value is invalid."
		}
	}
	return fieldErrors
}
