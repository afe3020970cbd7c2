// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Settings struct {
//		Source  string `env:"NAIJAFAKE_SOURCE" envDefault:"builtin"`
//		DataDir string `env:"NAIJAFAKE_DATA_DIR"`
//	}
//
//	config.MustLoadEnv("./.env.local")
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed at most once per process and served from
// an in-memory cache afterwards. Reload re-parses a single type and
// ResetCache clears everything, which is mostly useful in tests.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
