package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrConfiguration is returned when a tenant configuration can not be
	// applied (malformed URL, bad template, undecryptable password).
	ErrConfiguration = goerr.New("invalid tenant configuration")

	// ErrAuthFailure is returned by a repository client when the
	// repository rejects the configured credentials.
	ErrAuthFailure = goerr.New("repository authentication failed")

	// ErrConnection is returned by a repository client for any failure
	// other than an authentication rejection.
	ErrConnection = goerr.New("repository connection failed")

	ErrDecryption = goerr.New("decryption failed")

	ErrPlatform = goerr.New("platform request failed")

	// ErrPermissionDenied is returned when a user may not manage a tenant.
	ErrPermissionDenied = goerr.New("permission denied")

	ErrTenantNotFound   = goerr.New("tenant not found")
	ErrRevisionNotFound = goerr.New("revision not found")
)
