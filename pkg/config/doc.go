// Package config loads SDK configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 so
// that applications embedding the Pearl client can configure it without
// code: struct fields are populated from `env` tags, with `envDefault`
// fallbacks, and a local .env file is honored during development.
//
// # Usage
//
//	var cfg pearl.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	client, err := pearl.New(cfg)
//
// Load never mutates the process environment beyond the one-time .env
// import, and real environment variables always take precedence over
// .env file entries.
package config
