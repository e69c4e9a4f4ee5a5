package domain

import "errors"

var (
	ErrProviderUnavailable   = errors.New("wallet provider unavailable")
	ErrNoAuthorizedAccount   = errors.New("no authorized account")
	ErrAuthorizationDeclined = errors.New("authorization declined")
	ErrNotConnected          = errors.New("wallet not connected")
	ErrSendInFlight          = errors.New("wave already in flight")
	ErrTransactionFailed     = errors.New("transaction failed")
	ErrSecretNotFound        = errors.New("secret not found")
)
