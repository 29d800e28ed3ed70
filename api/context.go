package api

import (
	"context"
	"errors"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal attaches the verified administrator identity to the context
func ctxWithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, principalKey, email)
}

// ctxGetPrincipal retrieves the acting principal from the context
func ctxGetPrincipal(ctx context.Context) (string, error) {
	value := ctx.Value(principalKey)
	if value == nil {
		return "", errors.New("no principal attached to request")
	}
	email, ok := value.(string)
	if !ok {
		return "", errors.New("principal is not of type `string`")
	}
	return email, nil
}
