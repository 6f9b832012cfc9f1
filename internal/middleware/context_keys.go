package middleware

import "context"

// contextKey is the type of the keys this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	subjectKey   = contextKey("subject")
)

// GetSubjectFromCtx retrieves the authenticated token subject from the request context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
