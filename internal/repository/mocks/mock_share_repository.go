package mocks

import (
	"context"

	"docvault/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error) {
	args := m.Called(ctx, g)
	if fn, ok := args.Get(0).(func(context.Context, *model.ShareGrant) *model.ShareGrant); ok {
		return fn(ctx, g), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareRepository) List(ctx context.Context) ([]model.ShareGrant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShareGrant), args.Error(1)
}
