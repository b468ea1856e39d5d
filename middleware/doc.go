// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps a handler with structured start/completion logs:

	mux.HandleFunc("GET /q/{node_id}", middleware.WithLogging(h.Node))

Each request logs method, path, remote address, and duration.

# Error Responses

HTTPError writes a plain-text error with the given status; pages in
this service are server-rendered HTML, so errors stay plain rather
than JSON.
*/
package middleware
