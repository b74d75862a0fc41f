// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads a .env file first, then ParseFlags returns a Config:

	_ = cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - GeoPath: District boundaries, GeoJSON (required)
  - VotesPath, RecordsPath, DatabaseURL: survey data, at least one required;
    a precomputed votes.json wins over raw records, which win over the database
  - DatabaseType: sqlite (default) or postgres
  - VocabularyPath: accepted words and colours (default: dýl / později)
  - AdminKeySalt: Secret for admin key HMAC (admin routes disabled when empty)
  - CacheTTL: lifetime of cached per-district stats (default: 10m)
  - AllowedOrigins: CORS origins (default: any)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	RECORDS_PATH    → -records
	VOTES_PATH      → -votes
	GEO_PATH        → -geo
	VOCABULARY_PATH → -vocab
	ADMIN_KEY_SALT  → -admin-salt
	CACHE_TTL       → -cache-ttl
	ALLOWED_ORIGINS → -origins
	LOG_LEVEL       → -log-level
*/
package cliparse
