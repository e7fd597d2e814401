package chatclient

import (
	"context"
	"errors"
)

// errExhausted is returned by firstSuccess when every candidate failed.
var errExhausted = errors.New("all candidates failed")

// firstSuccess calls try for each candidate in order and returns the first
// result that comes back without an error. onFail sees every failed attempt.
// Candidates are never tried concurrently. A done ctx stops the loop and its
// error is returned.
func firstSuccess[T any](ctx context.Context, candidates []string, try func(context.Context, string) (T, error), onFail func(candidate string, err error)) (T, error) {
	var zero T
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		result, err := try(ctx, candidate)
		if err == nil {
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		if onFail != nil {
			onFail(candidate, err)
		}
	}
	return zero, errExhausted
}
