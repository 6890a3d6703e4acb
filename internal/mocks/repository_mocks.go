// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

type MockWeatherCacheRepositoryInterface struct {
	mock.Mock
}

func (m *MockWeatherCacheRepositoryInterface) Get(ctx context.Context, city string) (*model.WeatherRecord, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherRecord), args.Error(1)
}

func (m *MockWeatherCacheRepositoryInterface) Upsert(ctx context.Context, rec *model.WeatherRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockForecastCacheRepositoryInterface struct {
	mock.Mock
}

func (m *MockForecastCacheRepositoryInterface) GetAll(ctx context.Context, city string) ([]model.ForecastDay, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastDay), args.Error(1)
}

func (m *MockForecastCacheRepositoryInterface) ReplaceAll(ctx context.Context, city string, days []model.ForecastDay) error {
	args := m.Called(ctx, city, days)
	return args.Error(0)
}

type MockPriceCacheRepositoryInterface struct {
	mock.Mock
}

func (m *MockPriceCacheRepositoryInterface) Get(ctx context.Context, crop, state string) (*model.PriceRecord, error) {
	args := m.Called(ctx, crop, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceRecord), args.Error(1)
}

func (m *MockPriceCacheRepositoryInterface) Upsert(ctx context.Context, rec *model.PriceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockCropRepositoryInterface struct {
	mock.Mock
}

func (m *MockCropRepositoryInterface) Create(ctx context.Context, crop *model.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockCropRepositoryInterface) List(ctx context.Context) ([]model.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Crop), args.Error(1)
}

func (m *MockCropRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crop), args.Error(1)
}

func (m *MockCropRepositoryInterface) UpdateStage(ctx context.Context, id primitive.ObjectID, stage string) (*model.Crop, error) {
	args := m.Called(ctx, id, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crop), args.Error(1)
}

func (m *MockCropRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExpenseRepositoryInterface struct {
	mock.Mock
}

func (m *MockExpenseRepositoryInterface) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepositoryInterface) List(ctx context.Context) ([]model.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepositoryInterface) Summary(ctx context.Context) (*model.FinanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinanceSummary), args.Error(1)
}

type MockSoilRepositoryInterface struct {
	mock.Mock
}

func (m *MockSoilRepositoryInterface) Create(ctx context.Context, report *model.SoilReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockSoilRepositoryInterface) List(ctx context.Context) ([]model.SoilReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SoilReport), args.Error(1)
}

func (m *MockSoilRepositoryInterface) Latest(ctx context.Context) (*model.SoilReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SoilReport), args.Error(1)
}

type MockUserRepositoryInterface struct {
	mock.Mock
}

func (m *MockUserRepositoryInterface) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepositoryInterface) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
