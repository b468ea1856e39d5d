// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables.

# Settings

Required:

  - DATABASE_URL (-d): connection string for the session store
  - ADMIN_PASSWORD (--admin-pwd): shared secret for the /admin dashboard

Optional:

  - PORT (-p): server port (default: 5005)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: postgres)
  - QUESTIONS_PATH (-q): question graph YAML file (default: questions.yaml)

There is deliberately no default admin password: the process refuses to
start without one, so a forgotten env var cannot ship a well-known
secret to production.
*/
package cliparse
