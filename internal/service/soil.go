package service

import (
	"context"
	"time"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// SoilService provides soil report operations.
type SoilService interface {
	Add(ctx context.Context, req *dto.SoilReportCreateRequest) (*model.SoilReport, error)
	List(ctx context.Context) ([]model.SoilReport, error)
	Latest(ctx context.Context) (*model.SoilReport, error)
}

// SoilServiceImpl implements SoilService.
type SoilServiceImpl struct {
	soilRepo repository.SoilRepositoryInterface
}

// NewSoilService creates a new soil service.
func NewSoilService(soilRepo repository.SoilRepositoryInterface) SoilService {
	return &SoilServiceImpl{soilRepo: soilRepo}
}

// Add records a new soil report. The test date defaults to today.
func (s *SoilServiceImpl) Add(ctx context.Context, req *dto.SoilReportCreateRequest) (*model.SoilReport, error) {
	location := req.Location
	if location == "" {
		location = "default"
	}

	report := &model.SoilReport{
		Field:      location,
		PH:         req.PH,
		Nitrogen:   req.Nitrogen,
		Phosphorus: req.Phosphorus,
		Potassium:  req.Potassium,
		Moisture:   req.Moisture,
		LastTested: time.Now().Format("02 Jan 2006"),
	}
	if err := s.soilRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// List returns all soil reports, newest first.
func (s *SoilServiceImpl) List(ctx context.Context) ([]model.SoilReport, error) {
	return s.soilRepo.List(ctx)
}

// Latest returns the most recent soil report, or (nil, nil) when none exist.
func (s *SoilServiceImpl) Latest(ctx context.Context) (*model.SoilReport, error) {
	return s.soilRepo.Latest(ctx)
}
