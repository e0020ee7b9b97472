package mocks

import (
	"context"

	"docvault/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Share(ctx context.Context, sharedBy, documentID string, recipients []string, permission string) (*model.ShareGrant, error) {
	args := m.Called(ctx, sharedBy, documentID, recipients, permission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareGrant), args.Error(1)
}

func (m *MockShareService) SharedWithMe(ctx context.Context) ([]model.SharedDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SharedDocument), args.Error(1)
}

func (m *MockShareService) SharedByMe(ctx context.Context, user string) ([]model.SharedDocument, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SharedDocument), args.Error(1)
}
