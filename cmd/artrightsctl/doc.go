// Command artrightsctl runs the artrights HTTP server and its admin tasks.
//
// # Quick Start
//
//	# In-memory backend preloaded with demo fixtures
//	artrightsctl server --seed
//
//	# PostgreSQL backend
//	export DATABASE_URL=postgres://postgres@localhost/artrights?sslmode=disable
//	export ARTRIGHTS_STORAGE_BACKEND=postgres
//	artrightsctl db migrate
//	artrightsctl seed load fixtures.yml
//	artrightsctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ARTRIGHTS_STORAGE_BACKEND: memory or postgres
//   - ARTRIGHTS_CACHE_BACKEND: memory, redis or none
//   - ARTRIGHTS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - ARTRIGHTS_CONFIG_PATH: directory holding artrights.yml
//   - PORT: Server port (default: 8000)
//
// Every configuration attribute and its source is listed by
// "artrightsctl configuration show".
package main
