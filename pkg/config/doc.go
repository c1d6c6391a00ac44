// Package config provides a type-safe, cached loader for environment-based
// configuration, wrapping github.com/joho/godotenv and
// github.com/caarlos0/env/v11.
//
// Annotate a struct with `env` tags and pass a pointer to Load:
//
//	type ClientConfig struct {
//	    APIKey string `env:"OPENAI_API_KEY,required"`
//	    Model  string `env:"EMBEDDINGS_MODEL" envDefault:"text-embedding-3-small"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process and cached; Reset
// clears the cache for tests. MustLoad panics on failure for configuration
// the process cannot run without.
package config
