package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/storage"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

const (
	sourceBuiltin = "builtin"
	sourceDir     = "dir"
	sourceS3      = "s3"
)

// settings is the environment configuration. Flags override it.
type settings struct {
	Source  string `env:"NAIJAFAKE_SOURCE" envDefault:"builtin"`
	DataDir string `env:"NAIJAFAKE_DATA_DIR"`
	Seed    uint64 `env:"NAIJAFAKE_SEED"`

	S3 s3Settings

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
}

type s3Settings struct {
	Bucket      string `env:"NAIJAFAKE_S3_BUCKET"`
	Region      string `env:"NAIJAFAKE_S3_REGION"`
	Endpoint    string `env:"NAIJAFAKE_S3_ENDPOINT"`
	Prefix      string `env:"NAIJAFAKE_S3_PREFIX"`
	AccessKeyID string `env:"NAIJAFAKE_S3_ACCESS_KEY_ID"`
	SecretKey   string `env:"NAIJAFAKE_S3_SECRET_KEY"`
	PathStyle   bool   `env:"NAIJAFAKE_S3_PATH_STYLE"`
}

func (s settings) validate() error {
	return validator.Apply(
		validator.OneOf("source", s.Source, sourceBuiltin, sourceDir, sourceS3),
		validator.OneOf("LOG_FORMAT", s.LogFormat, "text", "json"),
		requiredFor(s.Source, sourceDir, "data-dir", s.DataDir),
		requiredFor(s.Source, sourceS3, "NAIJAFAKE_S3_BUCKET", s.S3.Bucket),
		requiredFor(s.Source, sourceS3, "NAIJAFAKE_S3_REGION", s.S3.Region),
	)
}

func requiredFor(source, want, field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return !strings.EqualFold(source, want) || strings.TrimSpace(value) != ""
		},
		Error: validator.ValidationError{Field: field, Message: "is required for source " + want},
	}
}

// openSource builds the dataset source selected by s.
func (s settings) openSource(ctx context.Context) (dataset.Source, error) {
	switch strings.ToLower(s.Source) {
	case sourceDir:
		return storage.NewLocal(s.DataDir)
	case sourceS3:
		return storage.NewS3(ctx, storage.S3Config{
			Bucket:         s.S3.Bucket,
			Region:         s.S3.Region,
			Prefix:         s.S3.Prefix,
			AccessKeyID:    s.S3.AccessKeyID,
			SecretKey:      s.S3.SecretKey,
			Endpoint:       s.S3.Endpoint,
			ForcePathStyle: s.S3.PathStyle,
		})
	case sourceBuiltin, "":
		return dataset.Builtin(), nil
	}
	return nil, fmt.Errorf("unknown source %q", s.Source)
}
