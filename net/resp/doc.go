// Package resp models API replies on both sides of the wire.
//
// On the client side every call yields a Response[T]: either a Result or a
// normalized *ErrorData. HTTP failures are data, never Go errors:
//
//	if e := resp.FromHTTP(status, body); e != nil {
//	    return resp.Err[structs.User](e)
//	}
//
// The error body format is
//
//	{
//	  "code": -401,
//	  "message": "Invalid parameters",
//	  "extra": {"fields": {"email": ["Enter a valid email address."]}}
//	}
//
// On the server side (the development API) Success and Fail write the same
// format:
//
//	resp.Success(w, user)
//	resp.Fail(w, resp.UnAuthorized("invalid token"))
//	resp.Fail(w, resp.ValidationFailed(fields))
package resp
