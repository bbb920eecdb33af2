package service

import (
	"context"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/auth"
)

const notificationPageSize = 50

type NotificationService interface {
	List(ctx context.Context, caller *auth.Identity) ([]models.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, caller *auth.Identity) ([]models.Notification, error) {
	if err := auth.Authorize(caller); err != nil {
		return nil, ErrUnauthorized
	}
	out, err := s.repo.FindByUser(ctx, caller.ID, notificationPageSize)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	return out, nil
}
