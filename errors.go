package goReauth

import "errors"

var (
	// ErrTransportRequired is an exported constant or variable used by the re-authentication client.
	ErrTransportRequired = errors.New("transport required")
	// ErrClassifierRequired is an exported constant or variable used by the re-authentication client.
	ErrClassifierRequired = errors.New("classifier required")
	// ErrReauthenticatorRequired is an exported constant or variable used by the re-authentication client.
	ErrReauthenticatorRequired = errors.New("reauthenticator required")
	// ErrClientNotReady is an exported constant or variable used by the re-authentication client.
	ErrClientNotReady = errors.New("client not initialized")
)
