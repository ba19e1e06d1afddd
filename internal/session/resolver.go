package session

import (
	"net/http"

	"github.com/avasilyev/blogd/internal/common/constants"
)

// FromRequest extracts the authenticated username from the request's
// session cookie. Absence of a valid cookie is a normal outcome, not an
// error: the caller falls back to the anonymous page variant.
func (m *Manager) FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return m.Resolve(cookie.Value)
}
