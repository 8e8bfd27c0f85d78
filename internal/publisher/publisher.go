package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/metrics"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

const DEFAULT_TOPIC = "grants.votes"

type Publisher struct {
	client *kgo.Client
	topic  string
	mu     sync.RWMutex
}

type PublishableMessage struct {
	Data        common.Vote `json:"data"`
	SessionId   string      `json:"session_id"`
	GeneratedAt time.Time   `json:"generated_at"`
}

func NewPublisher(cfg *config.PublisherConfig) (*Publisher, error) {
	if cfg.Brokers == "" {
		return nil, fmt.Errorf("no Kafka brokers configured")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DEFAULT_TOPIC
	}

	brokers := strings.Split(cfg.Brokers, ",")
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.ProducerBatchCompression(kgo.ZstdCompression()),
		kgo.ClientID("grants-insight"),
		kgo.MaxBufferedRecords(1_000_000),
		kgo.MetadataMaxAge(60 * time.Second),
		kgo.DialTimeout(10 * time.Second),
		kgo.DefaultProduceTopic(topic),
	}

	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: cfg.Username,
			Pass: cfg.Password,
		}.AsMechanism()))
	}
	if cfg.EnableTLS {
		tlsDialer := &tls.Dialer{NetDialer: &net.Dialer{Timeout: 10 * time.Second}}
		opts = append(opts, kgo.Dialer(tlsDialer.DialContext))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Kafka: %v", err)
	}

	log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("Publisher connected to Kafka")
	return &Publisher{client: client, topic: topic}, nil
}

// PublishSession sends one record per enriched vote of the session.
func (p *Publisher) PublishSession(ctx context.Context, session *pipeline.Session) error {
	if len(session.Votes) == 0 {
		return nil
	}
	publishStart := time.Now()

	records, err := CreateVoteRecords(p.topic, session)
	if err != nil {
		return err
	}
	if err := p.publishMessages(ctx, records); err != nil {
		return fmt.Errorf("failed to publish vote messages: %w", err)
	}

	log.Debug().Str("metric", "publish_duration").Msgf("Publisher.PublishSession duration: %f", time.Since(publishStart).Seconds())
	metrics.PublishDuration.Observe(time.Since(publishStart).Seconds())
	metrics.PublishedVotes.Add(float64(len(records)))
	return nil
}

func (p *Publisher) publishMessages(ctx context.Context, messages []*kgo.Record) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.client == nil {
		return nil
	}

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error
	wg.Add(len(messages))
	for _, msg := range messages {
		p.client.Produce(ctx, msg, func(_ *kgo.Record, err error) {
			defer wg.Done()
			if err != nil {
				log.Error().Err(err).Msg("Failed to publish message to Kafka")
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		})
	}
	wg.Wait()

	return firstErr
}

// CreateVoteRecords builds the kafka records of a session, keyed by chain, round and vote id
// so that a vote always lands on the same partition.
func CreateVoteRecords(topic string, session *pipeline.Session) ([]*kgo.Record, error) {
	records := make([]*kgo.Record, 0, len(session.Votes))
	for _, vote := range session.Votes {
		msg := PublishableMessage{
			Data:        vote,
			SessionId:   session.Id,
			GeneratedAt: session.GeneratedAt,
		}
		msgJson, err := json.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vote data: %v", err)
		}
		records = append(records, &kgo.Record{
			Topic: topic,
			Key:   []byte(fmt.Sprintf("%d:%s:%s", vote.ChainId, vote.RoundId, vote.Id)),
			Value: msgJson,
		})
	}
	return records, nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		p.client.Close()
		p.client = nil
		log.Debug().Msg("Publisher client closed")
	}
	return nil
}
