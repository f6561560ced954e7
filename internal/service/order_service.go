package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

// ErrUnknownStatus is returned when a status update targets a status id
// that does not exist.
var ErrUnknownStatus = errors.New("unknown order status")

type OrderService struct {
	orders      repository.OrderRepository
	kafkaWriter *kafka.Writer
}

// NewOrderService creates a new instance of OrderService. A nil writer
// disables event publishing.
func NewOrderService(orders repository.OrderRepository, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{orders: orders, kafkaWriter: kafkaWriter}
}

func (s *OrderService) List(ctx context.Context, search string) ([]*entity.Order, error) {
	orders, err := s.orders.List(ctx, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, err
	}
	return orders, nil
}

// History lists completed orders only.
func (s *OrderService) History(ctx context.Context, search string) ([]*entity.Order, error) {
	orders, err := s.orders.ListByStatusName(ctx, entity.StatusCompleted, search)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing order history")
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Details(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting order %d", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Statuses(ctx context.Context) ([]*entity.OrderStatus, error) {
	return s.orders.ListStatuses(ctx)
}

// DeleteStatus removes a status row; statuses still referenced by orders are
// protected.
func (s *OrderService) DeleteStatus(ctx context.Context, id int) error {
	if err := s.orders.DeleteStatus(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrStatusInUse) {
			logger.Error().Err(err).Msgf("Error deleting status %d", id)
		}
		return err
	}
	return nil
}

// UpdateStatus overwrites the order's status with the submitted one. Every
// transition is legal, including moving back from Completed; the only
// checks are that the order and the target status exist.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, statusID int) (*entity.Order, error) {
	exists, err := s.orders.StatusExists(ctx, statusID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking status %d", statusID)
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, statusID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating status of order %d", orderID)
		}
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Best effort; the status change already committed.
	if err := s.publishStatusEvent(ctx, order); err != nil {
		logger.Error().Err(err).Msgf("Error publishing status event for order %d", orderID)
	}

	return order, nil
}

func (s *OrderService) publishStatusEvent(ctx context.Context, order *entity.Order) error {
	if s.kafkaWriter == nil {
		return nil
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-status-%d", order.ID)),
		Value: orderJSON,
	}

	return s.kafkaWriter.WriteMessages(ctx, msg)
}
