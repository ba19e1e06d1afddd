package web

import (
	"net/http"

	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
	commonhttp "github.com/avasilyev/blogd/internal/common/http"
)

// Routes maps the full page surface. Credential-submitting routes sit
// behind their own rate limiter; everything else is unthrottled.
func (h *Handler) Routes(staticDir string, limiter *commonhttp.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /about", h.about)
	mux.HandleFunc("GET /contact", h.contact)
	mux.HandleFunc("GET /post/{id}", h.singlePost)
	mux.HandleFunc("GET /posts", h.createForm)
	mux.HandleFunc("POST /posts", h.createPost)
	mux.HandleFunc("GET /register", h.registerForm)
	mux.Handle("POST /register", limiter.Middleware(http.HandlerFunc(h.register)))
	mux.HandleFunc("GET /login", h.loginForm)
	mux.Handle("POST /login", limiter.Middleware(http.HandlerFunc(h.login)))
	mux.HandleFunc("POST /logout", h.logout)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return mux
}

func asValidationError(err error) (commonerrors.DomainError, bool) {
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Category() != commonerrors.CategoryValidation {
		return nil, false
	}
	return de, true
}
