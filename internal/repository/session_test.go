package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/repository"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/services/cache"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Set(ctx context.Context, id string, value models.Session) error {
	return m.Called(ctx, id, value).Error(0)
}

func (m *mockStore) Get(ctx context.Context, id string) (models.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(models.Session)
	return s, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(cache.NewMemoryStore[models.Session]())

	s, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, s)

	want := models.Session{Query: "Tokyo", WeatherReport: "report"}
	require.NoError(t, repo.Save(ctx, "abc", want))

	got, err := repo.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	got, err = repo.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)
}

func TestSessionRepository_EmptyIDSkipsStore(t *testing.T) {
	m := &mockStore{}
	repo := repository.NewSessionRepository(m)

	s, err := repo.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, s)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSessionRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	m := &mockStore{}
	m.On("Get", mock.Anything, "id").Return(models.Session{}, errors.New("connection reset")).Once()
	m.On("Set", mock.Anything, "id", mock.Anything).Return(errors.New("read only replica")).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	repo := repository.NewSessionRepository(m)

	_, err := repo.Load(ctx, "id")
	assert.EqualError(t, err, "load session: connection reset")

	err = repo.Save(ctx, "id", models.Session{})
	assert.EqualError(t, err, "save session: read only replica")
}
