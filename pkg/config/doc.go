// Package config loads formguard settings from the environment.
//
// Load[T] parses any struct annotated with caarlos0/env tags and caches the
// result per type, so every caller observes the same values for the life of
// the process. A .env file in the working directory is read once, before the
// first parse; LoadEnv reads additional files explicitly.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	reg, err := validator.NewRegistry(cfg.RegistryOptions()...)
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
