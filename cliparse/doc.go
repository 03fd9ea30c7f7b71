// Copyright (c) 2025 Snipe Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - DatabaseURL: Postgres connection string, or sqlite file path
    (default: giveaway.db)
  - StaticDir: Optional directory served at / (signup form)

# CLI Flags

	-p  Server port
	-t  Database type
	-d  Database URL / sqlite path
	-s  Static files directory

# Environment Variables

Flags fall back to environment variables: PORT, DATABASE_TYPE,
DATABASE_URL, STATIC_DIR. A .env file in the working directory is loaded
at startup before parsing.
*/
package cliparse
