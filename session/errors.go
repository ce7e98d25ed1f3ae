package session

import "errors"

var (
	// ErrStoreClosed is returned when a distributed session is loaded or
	// committed after its backing BadgerStore was closed.
	ErrStoreClosed = errors.New("session store closed")
)
