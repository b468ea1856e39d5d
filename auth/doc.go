// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth covers the two credentials this service deals in.

# Session Tokens

NewSessionID mints the opaque per-visitor token the front end hands out
as a cookie:

	http.SetCookie(w, &http.Cookie{Name: "session_id", Value: auth.NewSessionID()})

The token is a random UUID; the store keys every session record on it.

# Admin Password

CheckAdminPassword gates the stats dashboard with a constant-time
comparison against the ADMIN_PASSWORD configuration value. An empty
configured password rejects all requests instead of degrading to an
open dashboard; cliparse additionally refuses to start without one.
*/
package auth
