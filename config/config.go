package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultVersion            = "1.0.0"
	defaultCollectionID       = "FaceLockUsers"
	defaultSimilarity         = 90.0
	defaultTokenLifetime      = 30 * time.Minute
	defaultAlgorithm          = "HS256"
	defaultBucketURL          = "file://./reference_faces?create_dir=true"
	defaultProvider           = "rekognition"
	defaultRegion             = "us-east-1"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Recognition *RecognitionConfig `json:"recognition" yaml:"recognition"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

// AuthConfig defines session token settings.
type AuthConfig struct {
	Algorithm     string        `json:"algorithm" yaml:"algorithm"`
	TokenLifetime time.Duration `json:"tokenLifetime" yaml:"tokenLifetime"`
	// RestrictDeleteToSelf limits DELETE /users/:id to the token subject.
	RestrictDeleteToSelf bool `json:"restrictDeleteToSelf" yaml:"restrictDeleteToSelf"`
}

// RecognitionConfig defines the face recognition provider binding.
type RecognitionConfig struct {
	// Provider type: "rekognition" for AWS or "memory" for the in-process double
	Provider string `json:"provider" yaml:"provider"`

	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`

	// Optional endpoint override, e.g. a localstack URL
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	CollectionID string `json:"collectionId" yaml:"collectionId"`

	// Nil when unset; an explicit 0 accepts any match the provider returns
	DefaultSimilarityThreshold *float64      `json:"defaultSimilarityThreshold" yaml:"defaultSimilarityThreshold"`
	Timeout                    time.Duration `json:"timeout" yaml:"timeout"`
}

// SimilarityThreshold returns the configured default, or 90 when unset.
func (rc *RecognitionConfig) SimilarityThreshold() float64 {
	if rc == nil || rc.DefaultSimilarityThreshold == nil {
		return defaultSimilarity
	}

	return *rc.DefaultSimilarityThreshold
}

// StorageConfig defines where reference images are kept.
type StorageConfig struct {
	// gocloud.dev bucket URL (file://, s3://, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// RECOGNITION_COLLECTIONID -> recognition.collectionId
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if threshold := cfg.Recognition.SimilarityThreshold(); threshold < 0 || threshold > 100 {
		return nil, errors.Errorf("recognition.defaultSimilarityThreshold %v must be within 0..100", threshold)
	}

	return cfg, nil
}

// ApplyDefaults fills every unset optional setting.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.Version == "" {
		cfg.Env.Version = defaultVersion
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Algorithm == "" {
		cfg.Auth.Algorithm = defaultAlgorithm
	}
	if cfg.Auth.TokenLifetime <= 0 {
		cfg.Auth.TokenLifetime = defaultTokenLifetime
	}

	if cfg.Recognition == nil {
		cfg.Recognition = &RecognitionConfig{}
	}
	if cfg.Recognition.Provider == "" {
		cfg.Recognition.Provider = defaultProvider
	}
	if cfg.Recognition.Region == "" {
		cfg.Recognition.Region = defaultRegion
	}
	if cfg.Recognition.CollectionID == "" {
		cfg.Recognition.CollectionID = defaultCollectionID
	}
	if cfg.Recognition.DefaultSimilarityThreshold == nil {
		threshold := defaultSimilarity
		cfg.Recognition.DefaultSimilarityThreshold = &threshold
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = defaultBucketURL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
