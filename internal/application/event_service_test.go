package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

// MockEventReader はevent.Readerのモック
type MockEventReader struct {
	mock.Mock
}

func (m *MockEventReader) List(ctx context.Context) ([]event.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

func TestNewEventService(t *testing.T) {
	mockRepo := new(MockEventReader)
	service := NewEventService(mockRepo)
	assert.NotNil(t, service)
}

func TestEventService_ListEvents_Success(t *testing.T) {
	mockRepo := new(MockEventReader)
	service := NewEventService(mockRepo)

	expected := event.DefaultEvents()
	mockRepo.On("List", mock.Anything).Return(expected, nil)

	result, err := service.ListEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents_EmptyIsNotNil(t *testing.T) {
	mockRepo := new(MockEventReader)
	service := NewEventService(mockRepo)

	mockRepo.On("List", mock.Anything).Return(nil, nil)

	result, err := service.ListEvents(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestEventService_ListEvents_RepositoryError(t *testing.T) {
	mockRepo := new(MockEventReader)
	service := NewEventService(mockRepo)

	repoErr := errors.New("読み取りエラー")
	mockRepo.On("List", mock.Anything).Return(nil, repoErr)

	result, err := service.ListEvents(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
	assert.Contains(t, err.Error(), "イベント一覧取得に失敗しました")
}
