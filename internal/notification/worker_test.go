package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/mocks"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeSender records pushes and answers with a canned status code
type fakeSender struct {
	status int
	sent   []*webpush.Subscription
}

func (f *fakeSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	f.sent = append(f.sent, sub)
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

// WorkerTestSuite defines the test suite for the reminder Worker
type WorkerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTaskRepo *mocks.MockMaintenanceTaskRepositoryInterface
	mockNotifier *mocks.MockNotificationRepositoryInterface
	mockSubRepo  *mocks.MockPushSubscriptionRepositoryInterface
	worker       *Worker
	now          time.Time
}

// SetupTest sets up the test suite
func (suite *WorkerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockMaintenanceTaskRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockSubRepo = mocks.NewMockPushSubscriptionRepositoryInterface(suite.ctrl)

	suite.now = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	suite.worker = NewWorker(
		time.Minute, 2,
		suite.mockTaskRepo, suite.mockNotifier, suite.mockSubRepo,
		nil, logger.New(),
	)
	suite.worker.now = func() time.Time { return suite.now }
}

// TearDownTest cleans up after each test
func (suite *WorkerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkerTestSuite) reminderTask(due time.Time, lead int, unit models.LeadUnit) models.MaintenanceTask {
	return models.MaintenanceTask{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		Title:               "Filter replacement",
		Type:                models.MaintenancePreventive,
		Priority:            models.PriorityMedium,
		Status:              models.MaintenanceScheduled,
		DueDate:             due,
		NotificationEnabled: true,
		NotificationLead:    lead,
		NotificationUnit:    unit,
	}
}

// TestScanNotifiesTaskInLeadWindow tests that a task inside its lead
// window produces an in-app notification, queued pushes and a
// notified_at stamp
func (suite *WorkerTestSuite) TestScanNotifiesTaskInLeadWindow() {
	task := suite.reminderTask(suite.now.Add(2*24*time.Hour), 3, models.LeadDays)

	suite.mockTaskRepo.EXPECT().MarkOverdue(suite.now).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().
		GetDueForNotification(gomock.Any()).
		Return([]models.MaintenanceTask{task}, nil)

	var created *models.Notification
	suite.mockNotifier.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			created = n
			return nil
		})
	suite.mockSubRepo.EXPECT().
		GetAll().
		Return([]models.PushSubscription{
			{Endpoint: "https://push.example/abc", P256DH: "p", Auth: "a"},
		}, nil)
	suite.mockTaskRepo.EXPECT().
		Update(task.ID, map[string]interface{}{"notified_at": suite.now}).
		Return(nil)

	suite.worker.Scan(context.Background())

	assert.NotNil(suite.T(), created)
	assert.Equal(suite.T(), "maintenance", created.Category)
	assert.Equal(suite.T(), task.ID, *created.MaintenanceTaskID)
	assert.Contains(suite.T(), created.Message, "Filter replacement")

	// The push landed in the queue with the task payload
	select {
	case job := <-suite.worker.jobs:
		var payload reminderPayload
		assert.NoError(suite.T(), json.Unmarshal(job.payload, &payload))
		assert.Equal(suite.T(), task.ID.String(), payload.TaskID)
		assert.Equal(suite.T(), "https://push.example/abc", job.sub.Endpoint)
	default:
		suite.T().Fatal("expected a queued push job")
	}
}

// TestScanSkipsTaskOutsideLeadWindow tests that a task whose lead window
// has not opened yet is left alone
func (suite *WorkerTestSuite) TestScanSkipsTaskOutsideLeadWindow() {
	// Due in ten days with a one-day lead: too early to remind
	task := suite.reminderTask(suite.now.Add(10*24*time.Hour), 1, models.LeadDays)

	suite.mockTaskRepo.EXPECT().MarkOverdue(suite.now).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().
		GetDueForNotification(gomock.Any()).
		Return([]models.MaintenanceTask{task}, nil)

	suite.worker.Scan(context.Background())
}

// TestScanWeeklyLead tests that week units widen the reminder window
func (suite *WorkerTestSuite) TestScanWeeklyLead() {
	// Due in ten days with a two-week lead: inside the window
	task := suite.reminderTask(suite.now.Add(10*24*time.Hour), 2, models.LeadWeeks)

	suite.mockTaskRepo.EXPECT().MarkOverdue(suite.now).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().
		GetDueForNotification(gomock.Any()).
		Return([]models.MaintenanceTask{task}, nil)
	suite.mockNotifier.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockSubRepo.EXPECT().GetAll().Return([]models.PushSubscription{}, nil)
	suite.mockTaskRepo.EXPECT().Update(task.ID, gomock.Any()).Return(nil)

	suite.worker.Scan(context.Background())
}

// TestDeliverRemovesGoneSubscription tests that a 410 response prunes
// the subscription
func (suite *WorkerTestSuite) TestDeliverRemovesGoneSubscription() {
	sender := &fakeSender{status: http.StatusGone}
	suite.worker.sender = sender

	suite.mockSubRepo.EXPECT().DeleteByEndpoint("https://push.example/expired").Return(nil)

	suite.worker.deliver(suite.worker.log, pushJob{
		sub:     models.PushSubscription{Endpoint: "https://push.example/expired", P256DH: "p", Auth: "a"},
		payload: []byte(`{}`),
	})

	assert.Len(suite.T(), sender.sent, 1)
	assert.Equal(suite.T(), "https://push.example/expired", sender.sent[0].Endpoint)
}

// TestDeliverKeepsLiveSubscription tests that a 201 response leaves the
// subscription in place
func (suite *WorkerTestSuite) TestDeliverKeepsLiveSubscription() {
	sender := &fakeSender{status: http.StatusCreated}
	suite.worker.sender = sender

	suite.worker.deliver(suite.worker.log, pushJob{
		sub:     models.PushSubscription{Endpoint: "https://push.example/live", P256DH: "p", Auth: "a"},
		payload: []byte(`{}`),
	})

	assert.Len(suite.T(), sender.sent, 1)
}

// TestWorkerTestSuite runs the test suite
func TestWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}
