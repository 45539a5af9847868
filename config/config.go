// Package config loads the settings of the recovery driver from flags,
// environment variables and an optional config file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	shamir "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/runner"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. SHAMIR_WORKERS=8.
const EnvPrefix = "SHAMIR"

// Setting keys.
const (
	KeyConfig      = "config"
	KeyDir         = "dir"
	KeyWorkers     = "workers"
	KeyField       = "field"
	KeyConsistency = "consistency"
	KeyFormat      = "format"
	KeyOut         = "out"
	KeyDebug       = "debug"
)

// Fields that secrets can be recovered in.
const (
	FieldInteger   = "integer"
	FieldSecp256k1 = "secp256k1"
)

// DefaultDir is the directory that case files are read from by default.
const DefaultDir = "./test-cases"

// Config holds the settings of a run.
type Config struct {
	Dir         string
	Workers     int
	Field       string
	Consistency bool
	Format      string
	Out         string
	Debug       bool
}

// Defaults sets the default value of every setting.
func Defaults(v *viper.Viper) {
	v.SetDefault(KeyDir, DefaultDir)
	v.SetDefault(KeyWorkers, runner.DefaultWorkers)
	v.SetDefault(KeyField, FieldInteger)
	v.SetDefault(KeyConsistency, false)
	v.SetDefault(KeyFormat, runner.FormatText)
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyDebug, false)
}

// RegisterFlags registers a flag for every setting on the flag set, and binds
// the flags to the viper instance.
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String(KeyConfig, "", "config file (yaml, json or toml)")
	flags.StringP(KeyDir, "d", DefaultDir, "directory of case files")
	flags.IntP(KeyWorkers, "w", runner.DefaultWorkers, "number of cases solved at the same time")
	flags.String(KeyField, FieldInteger, "field to recover in: integer or secp256k1")
	flags.Bool(KeyConsistency, false, "check that shares beyond the threshold agree with the recovered polynomial")
	flags.StringP(KeyFormat, "f", runner.FormatText, "report format: text, json, cbor or binary")
	flags.StringP(KeyOut, "o", "", "file to write the report to, stdout if empty")
	flags.Bool(KeyDebug, false, "debug logging")

	return errors.Wrap(v.BindPFlags(flags), "bind flags")
}

// Load reads the settings from the viper instance. Environment variables with
// the SHAMIR_ prefix are applied, and if a config file is set it is read
// before the settings are resolved.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %q", path)
		}
	}

	cfg := Config{
		Dir:         v.GetString(KeyDir),
		Workers:     v.GetInt(KeyWorkers),
		Field:       strings.ToLower(v.GetString(KeyField)),
		Consistency: v.GetBool(KeyConsistency),
		Format:      strings.ToLower(v.GetString(KeyFormat)),
		Out:         v.GetString(KeyOut),
		Debug:       v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if any setting is out of range.
func (cfg Config) Validate() error {
	if cfg.Dir == "" {
		return errors.New("dir should not be empty")
	}
	if cfg.Workers < 1 {
		return errors.Errorf("workers should be at least 1, got %v", cfg.Workers)
	}
	switch cfg.Field {
	case FieldInteger, FieldSecp256k1:
	default:
		return errors.Errorf("unknown field %q", cfg.Field)
	}
	switch cfg.Format {
	case runner.FormatText, runner.FormatJSON, runner.FormatCBOR, runner.FormatBinary:
	default:
		return errors.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

// Recoverer returns the recoverer for the configured field.
func (cfg Config) Recoverer() shamir.Recoverer {
	var opts []shamir.Option
	if cfg.Consistency {
		opts = append(opts, shamir.WithConsistencyCheck())
	}
	if cfg.Field == FieldSecp256k1 {
		return shamir.NewFieldReconstructor(opts...)
	}
	return shamir.NewReconstructor(opts...)
}
