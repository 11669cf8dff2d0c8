package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ceyhunemlak/listing-service/internal/config"
	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	ListingCreatedSubject = "listing.created"
	ListingUpdatedSubject = "listing.updated"
	ListingDeletedSubject = "listing.deleted"
)

type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

type DeletedEventPayload struct {
	ID string `json:"id"`
}

func NewNATSPublisher(cfg *config.NATSConfig, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.ConnectTimeout),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))

	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) PublishListingCreated(ctx context.Context, listing *entity.Listing) error {
	return p.publish(ListingCreatedSubject, listing)
}

func (p *Publisher) PublishListingUpdated(ctx context.Context, listing *entity.Listing) error {
	return p.publish(ListingUpdatedSubject, listing)
}

func (p *Publisher) PublishListingDeleted(ctx context.Context, listingID string) error {
	return p.publish(ListingDeletedSubject, DeletedEventPayload{ID: listingID})
}

func (p *Publisher) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal event payload", zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("marshal payload for %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish NATS event", zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		p.nc.Close()
	}
}
