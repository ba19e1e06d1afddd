package web

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type credentialsForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type postForm struct {
	Title string `validate:"required,max=200"`
	Body  string `validate:"required,max=65536"`
}

func parseCredentialsForm(r *http.Request) (credentialsForm, error) {
	if err := r.ParseForm(); err != nil {
		return credentialsForm{}, err
	}

	f := credentialsForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := validate.Struct(f); err != nil {
		return f, err
	}
	return f, nil
}

func parsePostForm(r *http.Request) (postForm, error) {
	if err := r.ParseForm(); err != nil {
		return postForm{}, err
	}

	f := postForm{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}
	if err := validate.Struct(f); err != nil {
		return f, err
	}
	return f, nil
}
