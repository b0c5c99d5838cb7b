// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Types are parsed once per process and cached, so independent components
// can each call Load for the shared Config type without re-reading the
// environment:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config
