// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")

	// Reporting-flow taxonomy.
	ErrStorage         = errors.New("storage failure")
	ErrDesync          = errors.New("session out of sync")
	ErrExternalService = errors.New("external service failure")
)
