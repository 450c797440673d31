package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/repository"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Sender sends a single web push message. Extracted so tests can
// substitute the network call.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender sends through the webpush library
type WebPushSender struct{}

// Send sends the payload to one subscription
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// pushJob is one payload-to-subscription delivery
type pushJob struct {
	sub     models.PushSubscription
	payload []byte
}

// reminderPayload is the JSON body pushed to browsers
type reminderPayload struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	TaskID  string `json:"task_id"`
	DueDate string `json:"due_date"`
}

// Worker scans maintenance tasks on an interval and fans reminder
// pushes out to a pool of sender goroutines. Each task is notified at
// most once per due date; rescheduling a task re-arms it.
type Worker struct {
	interval time.Duration
	poolSize int
	jobs     chan pushJob

	taskRepo         repository.MaintenanceTaskRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	subRepo          repository.PushSubscriptionRepositoryInterface

	options *webpush.Options
	sender  Sender
	log     *logger.Logger
	now     func() time.Time
}

// NewWorker creates a reminder worker with the given scan interval and
// sender pool size.
func NewWorker(
	interval time.Duration,
	poolSize int,
	taskRepo repository.MaintenanceTaskRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	subRepo repository.PushSubscriptionRepositoryInterface,
	options *webpush.Options,
	log *logger.Logger,
) *Worker {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Worker{
		interval:         interval,
		poolSize:         poolSize,
		jobs:             make(chan pushJob, poolSize*4),
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
		subRepo:          subRepo,
		options:          options,
		sender:           &WebPushSender{},
		log:              log.WithComponent("notification-worker"),
		now:              time.Now,
	}
}

// Start launches the sender pool and the scan loop. It returns
// immediately; everything stops when the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	for i := 0; i < w.poolSize; i++ {
		go w.sendLoop(ctx, i)
	}
	go w.scanLoop(ctx)
}

func (w *Worker) scanLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// First scan right away so a restart does not delay reminders by a
	// full interval.
	w.Scan(ctx)
	for {
		select {
		case <-ticker.C:
			w.Scan(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Scan runs one reminder pass: overdue promotion, then reminders for
// tasks entering their lead window.
func (w *Worker) Scan(ctx context.Context) {
	now := w.now().UTC()

	promoted, err := w.taskRepo.MarkOverdue(now)
	if err != nil {
		w.log.WithField("error", err).Error("failed to promote overdue tasks")
	} else if promoted > 0 {
		w.log.WithField("count", promoted).Info("tasks marked overdue")
	}

	// The query horizon covers the longest expressible lead window;
	// the per-task lead is applied below.
	horizon := now.Add(180 * 24 * time.Hour)
	tasks, err := w.taskRepo.GetDueForNotification(horizon)
	if err != nil {
		w.log.WithField("error", err).Error("failed to load tasks due for notification")
		return
	}

	for _, task := range tasks {
		if now.Before(task.DueDate.Add(-task.LeadDuration())) {
			continue
		}
		if err := w.notify(ctx, &task, now); err != nil {
			w.log.WithFields(map[string]interface{}{
				"task_id": task.ID,
				"error":   err,
			}).Error("failed to send maintenance reminder")
		}
	}
}

func (w *Worker) notify(ctx context.Context, task *models.MaintenanceTask, now time.Time) error {
	title := "Maintenance due"
	body := fmt.Sprintf("%s is due on %s", task.Title, task.DueDate.Format("2006-01-02"))

	notification := &models.Notification{
		Title:             title,
		Message:           body,
		Category:          "maintenance",
		MaintenanceTaskID: &task.ID,
		ScheduledFor:      &task.DueDate,
	}
	if err := w.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to create in-app notification: %w", err)
	}

	payload, err := json.Marshal(reminderPayload{
		Title:   title,
		Body:    body,
		TaskID:  task.ID.String(),
		DueDate: task.DueDate.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	subs, err := w.subRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}
	for _, sub := range subs {
		select {
		case w.jobs <- pushJob{sub: sub, payload: payload}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// Stamp before the pushes complete: one reminder per due date even
	// if some deliveries fail.
	if err := w.taskRepo.Update(task.ID, map[string]interface{}{"notified_at": now}); err != nil {
		return fmt.Errorf("failed to stamp notified_at: %w", err)
	}

	w.log.WithFields(map[string]interface{}{
		"task_id":       task.ID,
		"subscriptions": len(subs),
	}).Info("maintenance reminder sent")
	return nil
}

func (w *Worker) sendLoop(ctx context.Context, id int) {
	log := w.log.WithField("sender", id)
	for {
		select {
		case job := <-w.jobs:
			w.deliver(log, job)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) deliver(log *logger.Logger, job pushJob) {
	sub := &webpush.Subscription{
		Endpoint: job.sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: job.sub.P256DH,
			Auth:   job.sub.Auth,
		},
	}

	resp, err := w.sender.Send(job.payload, sub, w.options)
	if err != nil {
		log.WithFields(map[string]interface{}{
			"endpoint": job.sub.Endpoint,
			"error":    err,
		}).Warn("push delivery failed")
		return
	}
	defer resp.Body.Close()

	// Gone means the browser dropped the subscription.
	if resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound {
		log.WithField("endpoint", job.sub.Endpoint).Info("removing expired subscription")
		if err := w.subRepo.DeleteByEndpoint(job.sub.Endpoint); err != nil {
			log.WithField("error", err).Warn("failed to delete expired subscription")
		}
	}
}
