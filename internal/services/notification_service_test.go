package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/push"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSender struct {
	mu       sync.Mutex
	tokens   []string
	messages []push.Message
	failFor  map[string]bool
}

func (s *fakeSender) Send(_ context.Context, token string, msg push.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, token)
	s.messages = append(s.messages, msg)
	if s.failFor[token] {
		return errors.New("delivery refused")
	}
	return nil
}

func (s *fakeSender) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...)
}

func (s *fakeSender) payloads() []push.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]push.Message(nil), s.messages...)
}

// fakeUserRepo serves the recipient snapshot and token reads the
// notification flow depends on.
type fakeUserRepo struct {
	repositories.UserRepository

	recipients []repositories.Recipient
	tokens     []string
}

func (r *fakeUserRepo) SnapshotRecipients(_ *gorm.DB) ([]repositories.Recipient, error) {
	return r.recipients, nil
}

func (r *fakeUserRepo) TokenHolders() ([]string, error) {
	return r.tokens, nil
}

type fakeNotificationRepo struct {
	repositories.NotificationRepository

	nextID        uint
	created       []*models.Notification
	updated       []*models.Notification
	updateErr     error
	fanOutErr     error
	markSeenCalls []int
	markSeenRet   int64
}

func (r *fakeNotificationRepo) CreateWithFanOut(n *models.Notification, users repositories.UserRepository) ([]repositories.Recipient, error) {
	if r.fanOutErr != nil {
		return nil, r.fanOutErr
	}
	r.nextID++
	n.ID = r.nextID
	r.created = append(r.created, n)
	return users.SnapshotRecipients(nil)
}

func (r *fakeNotificationRepo) Update(n *models.Notification) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, n)
	return nil
}

func (r *fakeNotificationRepo) MarkSeenBatch(_ uint, limit int) (int64, error) {
	r.markSeenCalls = append(r.markSeenCalls, limit)
	return r.markSeenRet, nil
}

func strPtr(s string) *string { return &s }

func TestCreateAndFanOut_PushesOnlyToTokenHolders(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUserRepo{
		recipients: []repositories.Recipient{
			{ID: 1, DeviceToken: strPtr("tok-1")},
			{ID: 2, DeviceToken: nil},
			{ID: 3, DeviceToken: strPtr("")},
			{ID: 4, DeviceToken: strPtr("tok-4")},
		},
	}
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, users, push.NewDispatcher(sender, time.Second), newFakeStorage())

	notification, err := svc.CreateAndFanOut(&dto.CreateNotificationRequest{
		Title:   "Diwali Offers",
		Message: "Festive discounts this week",
	})
	require.NoError(t, err)
	assert.NotZero(t, notification.ID)
	require.Len(t, repo.created, 1)

	// The push round is asynchronous; only the two real tokens reach the
	// sender, regardless of the four delivery rows created.
	assert.Eventually(t, func() bool {
		return len(sender.sent()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"tok-1", "tok-4"}, sender.sent())
}

func TestCreateAndFanOut_ResolvesImageToPublicURL(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUserRepo{recipients: []repositories.Recipient{{ID: 1, DeviceToken: strPtr("tok-1")}}}
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, users, push.NewDispatcher(sender, time.Second), newFakeStorage())

	_, err := svc.CreateAndFanOut(&dto.CreateNotificationRequest{
		Title:   "Diwali Offers",
		Message: "Festive discounts this week",
		Image:   "notifications/offer.jpg",
	})
	require.NoError(t, err)

	// Devices fetch the image themselves, so the payload must carry the
	// full public URL, never the bare storage path.
	require.Eventually(t, func() bool {
		return len(sender.payloads()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "http://localhost/uploads/notifications/offer.jpg", sender.payloads()[0].Image)
}

func TestEditAndRedispatch_ResolvesImageToPublicURL(t *testing.T) {
	sender := &fakeSender{}
	users := &fakeUserRepo{tokens: []string{"tok-1"}}
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, users, push.NewDispatcher(sender, time.Second), newFakeStorage())

	_, err := svc.EditAndRedispatch(3, &dto.UpdateNotificationRequest{
		Title:   "Updated offers",
		Message: "Now extended",
		Image:   "notifications/offer-v2.jpg",
	})
	require.NoError(t, err)

	require.Len(t, sender.payloads(), 1)
	assert.Equal(t, "http://localhost/uploads/notifications/offer-v2.jpg", sender.payloads()[0].Image)
}

func TestCreateAndFanOut_NoUsersNoPush(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, &fakeUserRepo{}, push.NewDispatcher(sender, time.Second), newFakeStorage())

	_, err := svc.CreateAndFanOut(&dto.CreateNotificationRequest{Title: "t", Message: "m"})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sender.sent())
}

func TestCreateAndFanOut_RepoErrorSurfaces(t *testing.T) {
	repo := &fakeNotificationRepo{fanOutErr: errors.New("tx aborted")}
	svc := NewNotificationService(repo, &fakeUserRepo{}, push.NewDispatcher(&fakeSender{}, time.Second), newFakeStorage())

	_, err := svc.CreateAndFanOut(&dto.CreateNotificationRequest{Title: "t", Message: "m"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
}

func TestEditAndRedispatch_ReportsOutcome(t *testing.T) {
	sender := &fakeSender{failFor: map[string]bool{"tok-bad": true}}
	users := &fakeUserRepo{tokens: []string{"tok-1", "tok-bad", "tok-3"}}
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, users, push.NewDispatcher(sender, time.Second), newFakeStorage())

	summary, err := svc.EditAndRedispatch(7, &dto.UpdateNotificationRequest{
		Title:   "Updated offers",
		Message: "Now extended",
	})
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, uint(7), repo.updated[0].ID)

	// Synchronous: the summary is final when the call returns.
	assert.Equal(t, 3, summary.Recipients)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
}

func TestEditAndRedispatch_NotFound(t *testing.T) {
	repo := &fakeNotificationRepo{updateErr: repositories.ErrNotificationNotFound}
	svc := NewNotificationService(repo, &fakeUserRepo{}, push.NewDispatcher(&fakeSender{}, time.Second), newFakeStorage())

	_, err := svc.EditAndRedispatch(99, &dto.UpdateNotificationRequest{Title: "t", Message: "m"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMarkSeen_DefaultsLimit(t *testing.T) {
	repo := &fakeNotificationRepo{markSeenRet: 5}
	svc := NewNotificationService(repo, &fakeUserRepo{}, push.NewDispatcher(&fakeSender{}, time.Second), newFakeStorage())

	marked, err := svc.MarkSeen(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), marked)

	_, err = svc.MarkSeen(1, -3)
	require.NoError(t, err)

	_, err = svc.MarkSeen(1, 25)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10, 25}, repo.markSeenCalls)
}

func TestMarkSeen_NothingEligibleIsNotFound(t *testing.T) {
	repo := &fakeNotificationRepo{markSeenRet: 0}
	svc := NewNotificationService(repo, &fakeUserRepo{}, push.NewDispatcher(&fakeSender{}, time.Second), newFakeStorage())

	_, err := svc.MarkSeen(1, 10)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
