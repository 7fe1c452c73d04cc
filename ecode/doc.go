// Package ecode defines the error codes carried by normalized API errors and provides
// human-readable messages for them.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server and transport errors
//
// # Getting Error Messages
//
//	message := ecode.Text(ecode.NoLogin)
//	// Returns: "Account not logged in"
//
// # HTTP Status Mapping
//
//	code := ecode.FromHTTPStatus(http.StatusForbidden)
//	// Returns: ecode.AccessDenied
//
//	status := ecode.ToHTTPStatus(ecode.NothingFound)
//	// Returns: 404
package ecode
