package middleware

import "context"

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey       = contextKey("logger")
	tokenCompanyKey = contextKey("tokenCompanyID")
	tokenSubjectKey = contextKey("tokenSubject")
)

// GetTokenCompanyIDFromCtx retrieves the company scope of the authenticated
// token from the request context. It returns the company ID and a boolean
// indicating if it was found.
func GetTokenCompanyIDFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(tokenCompanyKey)
	if val == nil {
		return "", false
	}
	companyID, ok := val.(string)
	return companyID, ok
}

// GetTokenSubjectFromCtx retrieves the subject of the authenticated token,
// the actor recorded in audit fields. Machine credentials carry a fixed
// subject.
func GetTokenSubjectFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(tokenSubjectKey)
	if val == nil {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok
}
