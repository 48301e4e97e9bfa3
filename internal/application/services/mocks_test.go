package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

type mockSchoolRepo struct {
	mock.Mock
}

func (m *mockSchoolRepo) Create(ctx context.Context, school *entities.School) error {
	return m.Called(ctx, school).Error(0)
}

func (m *mockSchoolRepo) GetByID(ctx context.Context, id string) (*entities.School, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.School), args.Error(1)
}

func (m *mockSchoolRepo) GetByIDs(ctx context.Context, ids []string) ([]*entities.School, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.School), args.Error(1)
}

func (m *mockSchoolRepo) Update(ctx context.Context, school *entities.School) error {
	return m.Called(ctx, school).Error(0)
}

func (m *mockSchoolRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSchoolRepo) List(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.School), args.Error(1)
}

type mockSearchRepo struct {
	mock.Mock
}

func (m *mockSearchRepo) Search(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.School), args.Error(1)
}

func (m *mockSearchRepo) Index(ctx context.Context, school *entities.School) error {
	return m.Called(ctx, school).Error(0)
}

func (m *mockSearchRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entities.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *mockReviewRepo) ListBySchool(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error) {
	args := m.Called(ctx, schoolID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) Publish(ctx context.Context, channel string, event *entities.SchoolEvent) error {
	return m.Called(ctx, channel, event).Error(0)
}

func (m *mockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.SchoolEvent, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.SchoolEvent), args.Error(1)
}

func (m *mockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	return m.Called(ctx, channel).Error(0)
}

func (m *mockEventBus) Close() error {
	return m.Called().Error(0)
}
