package httpserver

import "errors"

var (
	ErrListen         = errors.New("httpserver: cannot listen")
	ErrAlreadyRunning = errors.New("httpserver: already running")
	ErrShutdown       = errors.New("httpserver: shutdown did not complete")
)
