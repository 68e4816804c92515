package github

import "context"

type contextKey string

const contextKeyToken contextKey = "github_token"

// ContextWithToken stamps a per-request override token onto ctx. The
// client prefers it over the persisted credential, which lets an
// operator exercise an unsaved token end to end.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKeyToken, token)
}

// TokenFromContext reads the override token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(contextKeyToken).(string)
	return v, ok
}
