package api

import (
	"context"
)

type keyType string

const draftModeKey keyType = "draftMode"

// ctxWithDraftMode marks the request as a draft-mode render
func ctxWithDraftMode(ctx context.Context, active bool) context.Context {
	return context.WithValue(ctx, draftModeKey, active)
}

// draftModeFromCtx reports whether the request renders draft content
func draftModeFromCtx(ctx context.Context) bool {
	active, _ := ctx.Value(draftModeKey).(bool)
	return active
}
