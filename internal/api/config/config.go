package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	SourceKindFile  = "file"
	SourceKindHTTP  = "http"
	SourceKindMinIO = "minio"

	ScorerLexicon = "lexicon"
	ScorerLLM     = "llm"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从 ./configs 加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := LoadConfigFrom("./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// LoadConfigFrom 从指定目录读取 config.yaml，环境变量 SENTISCOPE_* 覆盖文件中的值
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SENTISCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("dataset.posts.kind", SourceKindFile)
	v.SetDefault("dataset.posts.location", "data/mock_posts_biz.csv")
	v.SetDefault("dataset.comments.kind", SourceKindFile)
	v.SetDefault("dataset.comments.location", "data/mock_comments_biz.csv")
	v.SetDefault("dataset.workers", 8)

	v.SetDefault("sentiment.scorer", ScorerLexicon)
	v.SetDefault("sentiment.positive_threshold", 0.2)
	v.SetDefault("sentiment.negative_threshold", -0.2)
	v.SetDefault("sentiment.lexicon_file", "")

	v.SetDefault("topics.keywords", []string{"AI", "cloud", "cybersecurity", "API", "compliance"})
	v.SetDefault("topics.urgent_keywords", []string{"urgent", "outage", "breach", "unresolved", "down"})

	v.SetDefault("cache.ttl", 300)

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 60)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.producer.topic", "sentiscope.critical")
	v.SetDefault("kafka.producer.timeout", 5)
	v.SetDefault("kafka.producer.retries", 3)

	v.SetDefault("llm.url", "")
	v.SetDefault("llm.text_model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.concurrency", 5)

	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.reload_spec", "0 */5 * * * *")

	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "logstash-sentiscope")
	v.SetDefault("logstash.token", "")
}

// Validate 校验会影响计算结果的配置项
func (c *Config) Validate() error {
	if err := c.Sentiment.Thresholds().Validate(); err != nil {
		return err
	}
	switch c.Sentiment.Scorer {
	case ScorerLexicon:
	case ScorerLLM:
		if c.LLM.URL == "" || c.LLM.TextModel == "" {
			return errors.New("llm scorer requires llm.url and llm.text_model")
		}
	default:
		return fmt.Errorf("unknown sentiment scorer %q", c.Sentiment.Scorer)
	}

	sources := []struct {
		name string
		src  SourceConfig
	}{
		{"posts", c.Dataset.Posts},
		{"comments", c.Dataset.Comments},
	}
	for _, s := range sources {
		name, src := s.name, s.src
		switch src.Kind {
		case SourceKindFile, SourceKindHTTP:
		case SourceKindMinIO:
			if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
				return fmt.Errorf("dataset.%s: minio source requires minio.endpoint and minio.bucket", name)
			}
		default:
			return fmt.Errorf("dataset.%s: unknown source kind %q", name, src.Kind)
		}
		if src.Location == "" {
			return fmt.Errorf("dataset.%s: location is empty", name)
		}
	}

	if c.Dataset.Workers <= 0 {
		return fmt.Errorf("dataset.workers must be positive, got %d", c.Dataset.Workers)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %d", c.Cache.TTL)
	}
	return nil
}
