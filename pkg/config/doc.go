// Package config loads environment-based configuration structs.
//
// Load parses `env` struct tags via github.com/caarlos0/env and loads a
// .env file once per process via github.com/joho/godotenv. A missing .env
// file is not an error.
//
//	type Config struct {
//		CookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"PARAGLIDE_LOCALE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
