package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyHotkeyID      = errors.New("hotkey id is required")
	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrTokenInvalidated   = errors.New("vts rejected a freshly issued token")
	ErrUnexpectedResponse = errors.New("unexpected vts response")

	ErrEmptyText         = errors.New("no text provided")
	ErrEngineUnavailable = errors.New("VOICEVOX engine is not reachable")
)

// errInvalidToken marks an authentication rejected with the invalid token
// error id. It never leaves the package.
var errInvalidToken = errors.New("invalid token")

// TransportError means VTube Studio could not be reached or answered with
// something that is not a VTS message.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "vts connection error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError means VTube Studio explicitly refused a request. Err holds the
// remote *vts.APIError when there was one.
type RejectedError struct {
	Stage  string
	Reason string
	Err    error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// EngineError is a non-200 answer from the VOICEVOX engine.
type EngineError struct {
	Stage      string
	StatusCode int
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("VOICEVOX %s failed with status %d", e.Stage, e.StatusCode)
}
