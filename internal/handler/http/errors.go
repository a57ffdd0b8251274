// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request before it reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Messages written by the access guards.
const (
	msgLoginRequired  = "You must be logged in to proceed."
	msgForbiddenGuest = "Forbidden resource"
	msgMissingRole    = "You don't have the permission"
	msgRouteNotFound  = "Not Found"
	msgInternalError  = "Internal Server Error"
)
