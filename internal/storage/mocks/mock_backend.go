package mocks

import (
	"context"
	"io"
	"time"

	"docvault/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Put(ctx context.Context, name string, r io.Reader, size int64) (storage.FileInfo, error) {
	args := m.Called(ctx, name, r, size)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, int64) storage.FileInfo); ok {
		return f(ctx, name, r, size), args.Error(1)
	}
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockBackend) List(ctx context.Context) ([]storage.FileInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.FileInfo), args.Error(1)
}

func (m *MockBackend) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockBackend) Location() string {
	args := m.Called()
	return args.String(0)
}

// MockPresignBackend is a MockBackend that also implements storage.Presigner.
type MockPresignBackend struct {
	MockBackend
}

func (m *MockPresignBackend) PresignGet(ctx context.Context, name string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, name, expiry)
	return args.String(0), args.Error(1)
}
