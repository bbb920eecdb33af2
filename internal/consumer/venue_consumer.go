package consumer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/courtside/venue-service/internal/events"
	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	handleTimeout = 10 * time.Second
	// Pause before requeueing a delivery whose store write failed.
	defaultRetryDelay = 2 * time.Second
)

// VenueConsumer turns venue moderation events into owner notifications.
type VenueConsumer struct {
	repo       repository.NotificationRepository
	log        *zap.Logger
	retryDelay time.Duration
	wg         sync.WaitGroup
}

func NewVenueConsumer(repo repository.NotificationRepository, log *zap.Logger) *VenueConsumer {
	return &VenueConsumer{repo: repo, log: log, retryDelay: defaultRetryDelay}
}

// Start processes msgs in the background until the channel is closed.
func (vc *VenueConsumer) Start(msgs <-chan amqp.Delivery) {
	vc.wg.Add(1)
	go func() {
		defer vc.wg.Done()
		for msg := range msgs {
			vc.handleMessage(msg)
		}
		vc.log.Info("delivery channel closed, stopping consumer")
	}()
}

// Wait blocks until the delivery channel is drained.
func (vc *VenueConsumer) Wait() {
	vc.wg.Wait()
}

func (vc *VenueConsumer) handleMessage(msg amqp.Delivery) {
	ev, err := events.Unmarshal[events.VenueDecision](msg.Body)
	if err != nil {
		vc.log.Warn("drop malformed venue event", zap.String("routing_key", msg.RoutingKey), zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}
	if ev.EventID == "" || ev.OwnerID == "" {
		vc.log.Warn("drop venue event without ids", zap.String("venue_id", ev.VenueID))
		_ = msg.Nack(false, false)
		return
	}

	n, ok := notificationFor(msg.RoutingKey, ev)
	if !ok {
		vc.log.Debug("ignore venue event", zap.String("routing_key", msg.RoutingKey))
		_ = msg.Ack(false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := vc.repo.Upsert(ctx, n); err != nil {
		vc.log.Error("store notification, requeueing",
			zap.String("event_id", ev.EventID),
			zap.Duration("retry_delay", vc.retryDelay),
			zap.Error(err),
		)
		// The loop is single-threaded, so this also pauses intake while the store is down.
		time.Sleep(vc.retryDelay)
		_ = msg.Nack(false, true)
		return
	}

	vc.log.Info("owner notified",
		zap.String("event_id", ev.EventID),
		zap.String("venue_id", ev.VenueID),
		zap.String("owner_id", ev.OwnerID),
	)
	_ = msg.Ack(false)
}

func notificationFor(routingKey string, ev events.VenueDecision) (*models.Notification, bool) {
	n := &models.Notification{
		ID:        ev.EventID,
		UserID:    ev.OwnerID,
		Kind:      routingKey,
		CreatedAt: ev.DecidedAt,
	}
	switch routingKey {
	case rabbitmq.RoutingVenueApproved:
		n.Title = fmt.Sprintf("%s was approved", ev.VenueName)
		n.Body = fmt.Sprintf("%s is now live and can take bookings.", ev.VenueName)
	case rabbitmq.RoutingVenueRejected:
		n.Title = fmt.Sprintf("%s was rejected", ev.VenueName)
		n.Body = fmt.Sprintf("%s did not pass review. Update the listing and submit it again.", ev.VenueName)
	default:
		return nil, false
	}
	return n, true
}
