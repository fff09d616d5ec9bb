// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Storage connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SecretKey: Signing key for the session cookie (required)
  - ContentSecurityPolicy: Optional Content-Security-Policy header value
  - SeedFile: Optional YAML file of events loaded into an empty database

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-secret   Session cookie signing key
	-csp      Content-Security-Policy header
	-seed     Event seed file

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	DATABASE_URL            → -d
	DATABASE_TYPE           → -t
	SECRET_KEY              → -secret
	CONTENT_SECURITY_POLICY → -csp
	SEED_FILE               → -seed

CLI flags take precedence over environment variables.
*/
package cliparse
