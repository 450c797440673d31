package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles in-app notifications and push subscriptions
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	subRepo   repository.PushSubscriptionRepositoryInterface
	validator *validator.Validate
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	subRepo repository.PushSubscriptionRepositoryInterface,
	validator *validator.Validate,
) *NotificationService {
	return &NotificationService{repo: repo, subRepo: subRepo, validator: validator}
}

// CreateNotificationRequest represents the request to create a notification
type CreateNotificationRequest struct {
	Title             string     `json:"title" validate:"required,min=1,max=200"`
	Message           string     `json:"message"`
	Category          string     `json:"category" validate:"max=50"`
	MaintenanceTaskID *uuid.UUID `json:"maintenance_task_id"`
	ScheduledFor      *time.Time `json:"scheduled_for"`
}

// NotificationResponse represents the response for notification operations
type NotificationResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Category          string     `json:"category"`
	Read              bool       `json:"read"`
	MaintenanceTaskID *uuid.UUID `json:"maintenance_task_id"`
	ScheduledFor      *time.Time `json:"scheduled_for"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// SubscribeRequest registers a web push subscription
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Keys     struct {
		P256DH string `json:"p256dh" validate:"required"`
		Auth   string `json:"auth" validate:"required"`
	} `json:"keys"`
}

// Create creates a new in-app notification
func (s *NotificationService) Create(req *CreateNotificationRequest) (*NotificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	notification := &models.Notification{
		Title:             req.Title,
		Message:           req.Message,
		Category:          req.Category,
		MaintenanceTaskID: req.MaintenanceTaskID,
		ScheduledFor:      req.ScheduledFor,
	}

	if err := s.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notificationToResponse(notification), nil
}

// GetAll retrieves notifications with pagination, newest first
func (s *NotificationService) GetAll(page, pageSize int, unreadOnly bool) (*NotificationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	notifications, total, err := s.repo.GetAll(pageSize, offset, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *notificationToResponse(&notifications[i])
	}

	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if err := s.repo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification as read
func (s *NotificationService) MarkAllRead() error {
	if err := s.repo.MarkAllRead(); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Delete removes a notification
func (s *NotificationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// Subscribe registers or refreshes a push subscription
func (s *NotificationService) Subscribe(req *SubscribeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sub := &models.PushSubscription{
		Endpoint: req.Endpoint,
		P256DH:   req.Keys.P256DH,
		Auth:     req.Keys.Auth,
	}
	if err := s.subRepo.Upsert(sub); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// Unsubscribe removes a push subscription by its endpoint
func (s *NotificationService) Unsubscribe(endpoint string) error {
	if endpoint == "" {
		return apperrors.NewValidationError("endpoint", "is required")
	}
	if err := s.subRepo.DeleteByEndpoint(endpoint); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func notificationToResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:                notification.ID,
		Title:             notification.Title,
		Message:           notification.Message,
		Category:          notification.Category,
		Read:              notification.Read,
		MaintenanceTaskID: notification.MaintenanceTaskID,
		ScheduledFor:      notification.ScheduledFor,
		CreatedAt:         notification.CreatedAt,
	}
}
