// Package config loads runtime configuration for the catalog client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a dotenv file given with
//     -e or -env (./.env otherwise).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog API
//	-d string   SQLite database file or DSN
//	-i int      online status check interval (seconds)
//	-l int      course list page size
//	-v string   log level
//
// Environment
//
//	CATALOG_API_URL, CATALOG_DB, CATALOG_DATA_DIR, CATALOG_LIST_LIMIT,
//	CATALOG_LOG_LEVEL, CATALOG_REJECT_EXPIRED_SESSION
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds. Every key is optional:
//
//	{
//	  "api_base_url": "https://dummyjson.com",
//	  "database_dsn": "catalog.db",
//	  "data_dir": "data",
//	  "course_list_limit": 30,
//	  "token_ttl_minutes": 60,
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "log_level": "info",
//	  "reject_expired_session": false
//	}
package config
