package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidTxId    = errors.New("Invalid transaction id")

	ErrUnsupportedSchema = errors.New("unsupported uri schema")

	// ErrNotTrack is returned when a transaction exists but carries no audio
	ErrNotTrack         = errors.New("transaction is not a track")
	ErrNotAlbum         = errors.New("transaction is not an album")
	ErrUnsupportedAudio = errors.New("unsupported audio format")
	// ErrTooLarge is returned when a resource exceeds the configured size
	ErrTooLarge = errors.New("resource too large")

	// ErrUpstream wraps failures of the arweave gateway or the DRE node
	ErrUpstream = errors.New("upstream unavailable")
)
