package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/mocks"
	"github.com/kisanmitra/kisan-service/internal/service"
)

func TestSoilService_Add(t *testing.T) {
	t.Run("defaults location and test date", func(t *testing.T) {
		repo := new(mocks.MockSoilRepositoryInterface)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.SoilReport")).Return(nil)

		svc := service.NewSoilService(repo)
		report, err := svc.Add(context.Background(), &dto.SoilReportCreateRequest{PH: 6.5, Nitrogen: 120})

		require.NoError(t, err)
		assert.Equal(t, "default", report.Field)
		assert.Equal(t, time.Now().Format("02 Jan 2006"), report.LastTested)
		assert.Equal(t, 6.5, report.PH)
	})

	t.Run("keeps explicit location", func(t *testing.T) {
		repo := new(mocks.MockSoilRepositoryInterface)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.SoilReport")).Return(nil)

		svc := service.NewSoilService(repo)
		report, err := svc.Add(context.Background(), &dto.SoilReportCreateRequest{Location: "North Plot", PH: 7.1})

		require.NoError(t, err)
		assert.Equal(t, "North Plot", report.Field)
	})
}

func TestSoilService_Latest(t *testing.T) {
	t.Run("returns the newest report", func(t *testing.T) {
		repo := new(mocks.MockSoilRepositoryInterface)
		repo.On("Latest", mock.Anything).Return(&model.SoilReport{Field: "North Plot", PH: 6.5}, nil)

		svc := service.NewSoilService(repo)
		report, err := svc.Latest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "North Plot", report.Field)
	})

	t.Run("no reports yields nil without error", func(t *testing.T) {
		repo := new(mocks.MockSoilRepositoryInterface)
		repo.On("Latest", mock.Anything).Return(nil, nil)

		svc := service.NewSoilService(repo)
		report, err := svc.Latest(context.Background())

		require.NoError(t, err)
		assert.Nil(t, report)
	})
}
