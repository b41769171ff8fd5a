//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/alexy/fromcafe-sub000/internal/domain"
	"github.com/alexy/fromcafe-sub000/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-create",
		RoutingKey: "test-routing-key-create",
		QueueName:  "test-queue-create",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	post := &domain.Post{
		ID:             uuid.New(),
		BlogID:         uuid.New(),
		ExternalNoteID: utils.Ptr("note-123"),
		Title:          "Test Post",
		Content:        "<p>Test Content</p>",
		Slug:           "test-post",
		IsPublished:    true,
		PublishedAt:    &now,
	}

	err = pub.PublishPostEvent(s.ctx, domain.PostEventCreated, post)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received PostEventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.PostEventCreated, received.Action)
	s.Equal(post.ID, received.Post.ID)
	s.Equal("Test Post", received.Post.Title)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishUnpublished() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-unpublish",
		RoutingKey: "test-routing-key-unpublish",
		QueueName:  "test-queue-unpublish",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	post := &domain.Post{
		ID:             uuid.New(),
		BlogID:         uuid.New(),
		ExternalNoteID: utils.Ptr("note-456"),
		Title:          "Taken Down",
		Slug:           "taken-down",
		IsPublished:    false,
		PublishedAt:    &now,
	}

	err = pub.PublishPostEvent(s.ctx, domain.PostEventUnpublished, post)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received PostEventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.PostEventUnpublished, received.Action)
	s.False(received.Post.IsPublished)
	s.NotNil(received.Post.PublishedAt)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	post := &domain.Post{
		ID:             uuid.New(),
		BlogID:         uuid.New(),
		ExternalNoteID: utils.Ptr("note-789"),
		Title:          "Full Post",
		Content:        "<p>Full Content</p>",
		Excerpt:        utils.Ptr("Full Content"),
		Slug:           "full-post",
		IsPublished:    true,
		PublishedAt:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = pub.PublishPostEvent(s.ctx, domain.PostEventUpdated, post)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)

	var received PostEventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)

	s.Equal(domain.PostEventUpdated, received.Action)
	s.Equal(post.ID, received.Post.ID)
	s.Equal(post.BlogID, received.Post.BlogID)
	s.Require().NotNil(received.Post.ExternalNoteID)
	s.Equal("note-789", *received.Post.ExternalNoteID)
	s.Equal("Full Post", received.Post.Title)
	s.Equal("<p>Full Content</p>", received.Post.Content)
	s.Require().NotNil(received.Post.Excerpt)
	s.Equal("Full Content", *received.Post.Excerpt)
	s.Equal("full-post", received.Post.Slug)
	s.True(received.Post.IsPublished)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	post := &domain.Post{
		ID:          uuid.New(),
		BlogID:      uuid.New(),
		Title:       "Persistent Post",
		Slug:        "persistent-post",
		IsPublished: true,
	}

	err = pub.PublishPostEvent(s.ctx, domain.PostEventCreated, post)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
