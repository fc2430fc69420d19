package kafka

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"

	"Sentiscope/internal/api/config"
	"Sentiscope/internal/model"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// AlertProducer 把负面评论告警写入 Kafka，消息 key 为帖子 id，同一帖子的告警落在同一分区
type AlertProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewAlertProducer brokers 为空时返回 nil，调用方视为未启用
func NewAlertProducer(cfg config.KafkaConfig) (*AlertProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newAlertProducer(producer, cfg.Producer.Topic), nil
}

func newAlertProducer(producer sarama.SyncProducer, topic string) *AlertProducer {
	return &AlertProducer{producer: producer, topic: topic}
}

// PublishCritical 批量发送告警
func (p *AlertProducer) PublishCritical(ctx context.Context, alerts []model.CriticalAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	msgs := make([]*sarama.ProducerMessage, 0, len(alerts))
	for _, a := range alerts {
		body, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal alert for comment %d: %w", a.CommentID, err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(a.PostID, 10)),
			Value: sarama.ByteEncoder(body),
			Headers: []sarama.RecordHeader{
				{Key: []byte("fingerprint"), Value: []byte(a.Fingerprint)},
			},
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("send %d critical alerts: %w", len(msgs), err)
	}
	log.InfoContext(ctx, "critical alerts published", "topic", p.topic, "count", len(msgs))
	return nil
}

func (p *AlertProducer) Close() error {
	return p.producer.Close()
}
