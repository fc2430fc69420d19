package config

import "Sentiscope/internal/sentiment"

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Topics    TopicsConfig    `mapstructure:"topics"`
	Cache     CacheConfig     `mapstructure:"cache"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Cron      CronConfig      `mapstructure:"cron"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// SourceConfig 单个数据源：kind 为 file / http / minio
type SourceConfig struct {
	Kind     string `mapstructure:"kind"`
	Location string `mapstructure:"location"`
}

// DatasetConfig 帖子与评论两份输入
type DatasetConfig struct {
	Posts    SourceConfig `mapstructure:"posts"`
	Comments SourceConfig `mapstructure:"comments"`
	Workers  int          `mapstructure:"workers"`
}

// SentimentConfig 打分器与分类阈值
type SentimentConfig struct {
	Scorer            string  `mapstructure:"scorer"`
	PositiveThreshold float64 `mapstructure:"positive_threshold"`
	NegativeThreshold float64 `mapstructure:"negative_threshold"`
	LexiconFile       string  `mapstructure:"lexicon_file"`
}

func (c SentimentConfig) Thresholds() sentiment.Thresholds {
	return sentiment.Thresholds{
		Positive: c.PositiveThreshold,
		Negative: c.NegativeThreshold,
	}
}

// TopicsConfig 话题关键词与紧急关键词
type TopicsConfig struct {
	Keywords       []string `mapstructure:"keywords"`
	UrgentKeywords []string `mapstructure:"urgent_keywords"`
}

// CacheConfig 视图缓存，单位秒
type CacheConfig struct {
	TTL int `mapstructure:"ttl"`
}

// DBConfig 数据库配置，DSN 为空时不启用快照
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Producer ProducerConfig `mapstructure:"producer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	Topic   string `mapstructure:"topic"`
	Timeout int    `mapstructure:"timeout"`
	Retries int    `mapstructure:"retries"`
}

type LLMConfig struct {
	URL         string  `mapstructure:"url"`
	TextModel   string  `mapstructure:"text_model"`
	ApiKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
	Concurrency int64   `mapstructure:"concurrency"`
}

// CronConfig 定时重载
type CronConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ReloadSpec string `mapstructure:"reload_spec"`
}

// LogstashConfig 远程日志，address 为空时只输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
