package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Insert(ctx context.Context, lead *Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockRepository) List(ctx context.Context, filters Filters) ([]Lead, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Lead), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id string, status Status, notes string, updatedAt string) error {
	args := m.Called(ctx, id, status, notes, updatedAt)
	return args.Error(0)
}

func (m *mockRepository) MarkRead(ctx context.Context, id string, updatedAt string) error {
	args := m.Called(ctx, id, updatedAt)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) RelayConfigured() bool {
	return m.Called().Bool(0)
}

func (m *mockNotifier) SubmitRelay(ctx context.Context, lead Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *mockNotifier) SendCRM(ctx context.Context, lead Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *mockNotifier) SendWebhook(ctx context.Context, lead Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func validForm() map[string]string {
	return map[string]string{
		"name":        "김민수",
		"phone":       "010-1234-5678",
		"projectType": "pension",
		"message":     "펜션 야외 공간 견적 문의",
	}
}

func TestCaptureStoresNormalizedLead(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	notifier.On("RelayConfigured").Return(true)
	notifier.On("SubmitRelay", mock.Anything, mock.Anything).Return(nil)
	notifier.On("SendCRM", mock.Anything, mock.Anything).Return(nil)
	notifier.On("SendWebhook", mock.Anything, mock.Anything).Return(nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(l *Lead) bool {
		return l.Status == StatusNew && !l.Read && l.CreatedAt != "" && l.Name == "김민수"
	})).Return(nil)

	lead, err := svc.Capture(context.Background(), validForm(), "products")

	assert.NoError(t, err)
	assert.Equal(t, StatusNew, lead.Status)
	assert.Equal(t, "products", lead.Page)
	assert.False(t, lead.Read)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCaptureRelayFailureAbortsBeforeStore(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	notifier.On("RelayConfigured").Return(true)
	notifier.On("SubmitRelay", mock.Anything, mock.Anything).Return(errors.New("503"))

	_, err := svc.Capture(context.Background(), validForm(), "")

	assert.ErrorIs(t, err, ErrRelayRejected)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCaptureStoreFailureIsTerminal(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	notifier.On("RelayConfigured").Return(true)
	notifier.On("SubmitRelay", mock.Anything, mock.Anything).Return(nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Capture(context.Background(), validForm(), "")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	notifier.AssertNotCalled(t, "SendCRM", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendWebhook", mock.Anything, mock.Anything)
}

func TestCaptureFanOutFailuresAreSwallowed(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	notifier.On("RelayConfigured").Return(true)
	notifier.On("SubmitRelay", mock.Anything, mock.Anything).Return(nil)
	notifier.On("SendCRM", mock.Anything, mock.Anything).Return(errors.New("crm down"))
	notifier.On("SendWebhook", mock.Anything, mock.Anything).Return(errors.New("webhook down"))
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	lead, err := svc.Capture(context.Background(), validForm(), "")

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCaptureRequiresRelayConfiguration(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	notifier.On("RelayConfigured").Return(false)

	_, err := svc.Capture(context.Background(), validForm(), "")

	assert.ErrorIs(t, err, ErrRelayNotConfigured)
}

func TestCaptureValidation(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)
	notifier.On("RelayConfigured").Return(true)

	_, err := svc.Capture(context.Background(), map[string]string{"phone": "010-1111-2222"}, "")
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = svc.Capture(context.Background(), map[string]string{"name": "김민수"}, "")
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestListSearchMatchesAcrossFields(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	repo.On("List", mock.Anything, mock.Anything).Return([]Lead{
		{ID: "1", Name: "김민수", Message: "정자 설치 문의"},
		{ID: "2", Name: "이영희", Email: "lee@example.com"},
		{ID: "3", Name: "박철수", Product: "전통 정자"},
	}, nil)

	leads, err := svc.List(context.Background(), Filters{Search: "정자"})

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "1", leads[0].ID)
	assert.Equal(t, "3", leads[1].ID)
}

func TestDeleteSurfacesRemoteFailure(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, notifier)

	repo.On("Delete", mock.Anything, "lead-1").Return(errors.New("network unreachable"))

	err := svc.Delete(context.Background(), "lead-1")

	assert.Error(t, err)
}
