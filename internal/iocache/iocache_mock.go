package iocache

import (
	"time"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/schema"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotManager is a mock implementation of SnapshotManager for testing.
type MockSnapshotManager struct {
	mock.Mock
}

var _ contract.SnapshotManager = &MockSnapshotManager{} // Compile-time check

// GetSnapshotStore implements the SnapshotManager interface.
func (m *MockSnapshotManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Save implements the SnapshotStore interface.
func (m *MockSnapshotStore) Save(info schema.RepoInfo, recordedAt time.Time) error {
	args := m.Called(info, recordedAt)
	return args.Error(0)
}

// Load implements the SnapshotStore interface.
func (m *MockSnapshotStore) Load(dir string) (schema.SnapshotRecord, error) {
	args := m.Called(dir)
	return args.Get(0).(schema.SnapshotRecord), args.Error(1)
}

// List implements the SnapshotStore interface.
func (m *MockSnapshotStore) List() ([]schema.SnapshotRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.SnapshotRecord)
	return records, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
