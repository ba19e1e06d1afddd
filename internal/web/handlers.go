package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	authservice "github.com/avasilyev/blogd/internal/auth/service"
	blogservice "github.com/avasilyev/blogd/internal/blog/service"
	commonhttp "github.com/avasilyev/blogd/internal/common/http"
	"github.com/avasilyev/blogd/internal/common/logger"
	"github.com/avasilyev/blogd/internal/session"
)

type Handler struct {
	posts    *blogservice.PostService
	auth     *authservice.AuthService
	sessions *session.Manager
	render   *Renderer
	errors   *commonhttp.ErrorHandler
	log      *logger.Logger
	timeout  time.Duration
}

func NewHandler(
	posts *blogservice.PostService,
	auth *authservice.AuthService,
	sessions *session.Manager,
	render *Renderer,
	log *logger.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		posts:    posts,
		auth:     auth,
		sessions: sessions,
		render:   render,
		errors:   commonhttp.NewErrorHandler(log),
		log:      log,
		timeout:  timeout,
	}
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// Every page handler takes the optional resolved identity instead of
// being declared twice in logged-in and anonymous variants.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.FromRequest(r)

	ctx, cancel := h.requestContext(r)
	defer cancel()

	posts, err := h.posts.ListForHome(ctx)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if err := h.render.render(w, "index.html", pageData{
		User:  user,
		Flash: popFlash(w, r),
		Posts: posts,
	}); err != nil {
		h.log.Errorf("failed to render index: %v", err)
	}
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.FromRequest(r)
	if err := h.render.render(w, "about.html", pageData{User: user}); err != nil {
		h.log.Errorf("failed to render about: %v", err)
	}
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.FromRequest(r)
	if err := h.render.render(w, "contact.html", pageData{User: user}); err != nil {
		h.log.Errorf("failed to render contact: %v", err)
	}
}

func (h *Handler) singlePost(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.FromRequest(r)

	ctx, cancel := h.requestContext(r)
	defer cancel()

	post, err := h.posts.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if err := h.render.render(w, "post.html", pageData{User: user, Post: &post}); err != nil {
		h.log.Errorf("failed to render post: %v", err)
	}
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessions.FromRequest(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.render.render(w, "create.html", pageData{User: user}); err != nil {
		h.log.Errorf("failed to render create: %v", err)
	}
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessions.FromRequest(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form, err := parsePostForm(r)
	if err != nil {
		setFlash(w, "Title and body are required.")
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.posts.Create(ctx, form.Title, form.Body, user); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if err := h.render.render(w, "register.html", pageData{Flash: popFlash(w, r)}); err != nil {
		h.log.Errorf("failed to render register: %v", err)
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	form, err := parseCredentialsForm(r)
	if err != nil {
		setFlash(w, "Username and password are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	err = h.auth.Register(ctx, authservice.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if domainErr, ok := asValidationError(err); ok {
			setFlash(w, domainErr.Message())
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.render.render(w, "login.html", pageData{Flash: popFlash(w, r)}); err != nil {
		h.log.Errorf("failed to render login: %v", err)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	form, err := parseCredentialsForm(r)
	if err != nil {
		setFlash(w, "Invalid username/password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	token, err := h.auth.Login(ctx, authservice.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			setFlash(w, "Invalid username/password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.errors.HandleError(w, r, err)
		return
	}

	session.SetCookie(w, r, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.FromRequest(r)

	h.auth.Logout(r.Context(), user)
	session.ClearCookie(w, r)
	setFlash(w, "Successfully logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
