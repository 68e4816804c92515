package middleware

import (
	"context"
	"net/http"

	"github.com/thisisrober/provisioner/internal/github"
)

type contextKey string

const ContextKeyAdminSubject contextKey = "admin_subject"

// HeaderGitHubToken carries an optional per-request token override,
// letting an operator exercise an unsaved token without persisting it.
const HeaderGitHubToken = "X-GitHub-Token"

func AdminSubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyAdminSubject).(string)
	return v, ok
}

// GitHubTokenOverride lifts the override header into the context the
// provider client reads.
func GitHubTokenOverride() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := r.Header.Get(HeaderGitHubToken); tok != "" {
				r = r.WithContext(github.ContextWithToken(r.Context(), tok))
			}
			next.ServeHTTP(w, r)
		})
	}
}
