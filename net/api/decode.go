package api

import (
	"context"

	"github.com/ncobase/coursenav/ecode"
	"github.com/ncobase/coursenav/net/resp"
)

// Decode issues the request and decodes a successful body into T.
// Transport failures and undecodable bodies become error data, so callers
// handle a single discriminated result.
func Decode[T any](ctx context.Context, d Doer, req Request) resp.Response[T] {
	reply, err := d.Do(ctx, req)
	if err != nil {
		return resp.Err[T](resp.Transport(err))
	}
	if reply.Error != nil {
		return resp.Err[T](reply.Error)
	}

	var v T
	if err := reply.Decode(&v); err != nil {
		return resp.Err[T](&resp.ErrorData{
			Status:  reply.Status,
			Code:    ecode.ServerErr,
			Message: err.Error(),
		})
	}
	return resp.Ok(v)
}
