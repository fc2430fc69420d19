package kafka

import (
	"time"

	"Sentiscope/internal/api/config"

	"github.com/IBM/sarama"
)

// newSaramaConfig 负责统一初始化同步生产者使用的 sarama.Config
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Producer.Return.Successes = true
	c.Producer.Return.Errors = true
	c.Producer.Idempotent = false
	c.Producer.Retry.Max = kafkaCfg.Producer.Retries
	c.Producer.Timeout = time.Duration(kafkaCfg.Producer.Timeout) * time.Second
	c.Producer.Partitioner = sarama.NewHashPartitioner

	return c
}
