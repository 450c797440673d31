package repository

import (
	"maintenance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for in-app notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetAll retrieves notifications with pagination, newest first
func (r *NotificationRepository) GetAll(limit, offset int, unreadOnly bool) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	q := r.db.Model(&models.Notification{})
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkRead sets the read flag on a notification
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}

// MarkAllRead sets the read flag on every unread notification
func (r *NotificationRepository) MarkAllRead() error {
	return r.db.Model(&models.Notification{}).Where("read = ?", false).Update("read", true).Error
}

// Delete deletes a notification
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}

// PushSubscriptionRepository handles database operations for push subscriptions
type PushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository creates a new push subscription repository
func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// Upsert creates the subscription or refreshes its keys if the endpoint exists
func (r *PushSubscriptionRepository) Upsert(sub *models.PushSubscription) error {
	return r.db.Save(sub).Error
}

// GetAll retrieves all push subscriptions
func (r *PushSubscriptionRepository) GetAll() ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Find(&subs).Error
	return subs, err
}

// DeleteByEndpoint removes a subscription by its endpoint
func (r *PushSubscriptionRepository) DeleteByEndpoint(endpoint string) error {
	return r.db.Delete(&models.PushSubscription{}, "endpoint = ?", endpoint).Error
}
