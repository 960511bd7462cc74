package endpoints

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/service"
)

// MockRightsService implements service.RightsService for testing using testify/mock
type MockRightsService struct {
	mock.Mock
}

func NewMockRightsService() *MockRightsService {
	return &MockRightsService{}
}

func (m *MockRightsService) Get(ctx context.Context, id string) (*model.RightsHolder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RightsHolder), args.Error(1)
}

func (m *MockRightsService) View(ctx context.Context, id string) (*model.RightsHolderView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RightsHolderView), args.Error(1)
}

func (m *MockRightsService) ByArtwork(ctx context.Context, artworkID string) ([]model.RightsHolderView, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).([]model.RightsHolderView), args.Error(1)
}

func (m *MockRightsService) Totals(ctx context.Context, artworkID string) (model.RightsTotals, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).(model.RightsTotals), args.Error(1)
}

func (m *MockRightsService) AddMedia(ctx context.Context, holderID, mediaID string) (model.RightsMedia, error) {
	args := m.Called(ctx, holderID, mediaID)
	return args.Get(0).(model.RightsMedia), args.Error(1)
}

func (m *MockRightsService) RemoveMedia(ctx context.Context, holderID, mediaID string) (bool, error) {
	args := m.Called(ctx, holderID, mediaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRightsService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRightsService) Reconcile(ctx context.Context, in service.ReconcileInput) (*service.ReconcileResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReconcileResult), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

// fakeImageStore records uploads in memory.
type fakeImageStore struct {
	keys []string
	err  error
}

func (f *fakeImageStore) Put(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "http://images.test/artrights/" + key, nil
}

func (f *fakeImageStore) Delete(_ context.Context, key string) error {
	return f.err
}
