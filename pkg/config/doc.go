// Package config loads artrights settings.
//
// Values start from built-in defaults, are overridden by the YAML file at
// $ARTRIGHTS_CONFIG_PATH/artrights.yml (default /etc/artrights), and then
// by ARTRIGHTS_<NAME> environment variables. A .env file in the working
// directory is read first and never overrides variables already set.
//
// # Key Configuration Options
//
//   - ARTRIGHTS_STORAGE_BACKEND: memory or postgres
//   - ARTRIGHTS_CACHE_BACKEND: memory, redis or none
//   - ARTRIGHTS_LOG_LEVEL: debug, info, warn or error
//   - DATABASE_URL: Database connection (postgres backend)
//   - PORT: Server listen port
package config
