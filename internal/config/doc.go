// Package config holds the immutable run configuration for both pipelines.
//
// A Config value is built from built-in defaults, an optional .env file,
// environment variables and finally command-line flags, then passed by value
// into the pokedex and standings entry points. The generation table can be
// replaced with a YAML file so alternate group layouts can be exercised
// without touching code.
package config
