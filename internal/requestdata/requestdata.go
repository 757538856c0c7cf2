package requestdata

import (
	"context"
)

type ctxKey struct{}

// RequestData is the resolved identity for the current request, stashed in
// the context by the auth middleware after the token resolves.
type RequestData struct {
	Username    string
	TokenString string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(ctxKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}
