// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method routing on http.ServeMux:

	GET  /health           → liveness probe
	GET  /{$}              → landing page (exact match on /)
	GET  /q/{node_id}      → question or result page
	POST /capture-lead     → contact capture
	GET  /admin            → stats dashboard

All visitor-facing routes are wrapped with request logging. The router
is constructed with the store, graph, and config so handlers get their
dependencies injected rather than reaching for globals.
*/
package router
