package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/tlwire/internal/protocol/bin"
)

// Config is the tlctl configuration file.
type Config struct {
	Codec CodecConfig `toml:"codec"`
	Gen   GenConfig   `toml:"gen"`
	Log   LogConfig   `toml:"log"`
}

// CodecConfig bounds what a single decode may allocate. Zero keeps the
// default for that limit.
type CodecConfig struct {
	MaxBlobBytes     int `toml:"max_blob_bytes"`
	MaxVectorLen     int `toml:"max_vector_len"`
	MaxUnpackedBytes int `toml:"max_unpacked_bytes"`
}

type GenConfig struct {
	Schema  string `toml:"schema"`
	Output  string `toml:"output"`
	Package string `toml:"package"`
	Layer   int    `toml:"layer"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	limits := bin.DefaultLimits()
	return Config{
		Codec: CodecConfig{
			MaxBlobBytes:     limits.MaxBlobBytes,
			MaxVectorLen:     limits.MaxVectorLen,
			MaxUnpackedBytes: limits.MaxUnpackedBytes,
		},
		Gen: GenConfig{
			Schema:  "internal/protocol/types/schema.tl",
			Output:  "internal/protocol/types/types_gen.go",
			Package: "types",
		},
		Log: LogConfig{Level: "info"},
	}
}

func Load(path string) (Config, error) {
	var cfg Config
	if err := loadToml(path, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Codec.MaxBlobBytes == 0 {
		cfg.Codec.MaxBlobBytes = def.Codec.MaxBlobBytes
	}
	if cfg.Codec.MaxVectorLen == 0 {
		cfg.Codec.MaxVectorLen = def.Codec.MaxVectorLen
	}
	if cfg.Codec.MaxUnpackedBytes == 0 {
		cfg.Codec.MaxUnpackedBytes = def.Codec.MaxUnpackedBytes
	}
	if cfg.Gen.Package == "" {
		cfg.Gen.Package = def.Gen.Package
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func Validate(cfg Config) error {
	if err := ValidateCodec(cfg.Codec); err != nil {
		return fmt.Errorf("codec invalid: %w", err)
	}
	if err := ValidateGen(cfg.Gen); err != nil {
		return fmt.Errorf("gen invalid: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		return fmt.Errorf("log invalid: unknown level %q", cfg.Log.Level)
	}
	return nil
}

func ValidateCodec(cfg CodecConfig) error {
	if cfg.MaxBlobBytes < 0 || cfg.MaxVectorLen < 0 || cfg.MaxUnpackedBytes < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if cfg.MaxBlobBytes > bin.MaxBlobLen {
		return fmt.Errorf("max_blob_bytes %d exceeds the wire maximum %d", cfg.MaxBlobBytes, bin.MaxBlobLen)
	}
	return nil
}

func ValidateGen(cfg GenConfig) error {
	if strings.TrimSpace(cfg.Package) == "" {
		return fmt.Errorf("package is required")
	}
	if strings.ContainsAny(cfg.Package, " ./-") {
		return fmt.Errorf("package %q is not a Go identifier", cfg.Package)
	}
	if cfg.Layer < 0 {
		return fmt.Errorf("layer must not be negative")
	}
	return nil
}
