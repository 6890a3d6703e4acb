package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// ErrCropNotFound is returned when a crop ID does not exist.
var ErrCropNotFound = errors.New("crop not found")

// ErrInvalidStage is returned when a stage update names an unknown stage.
var ErrInvalidStage = errors.New("invalid crop stage")

// validStages is the set of accepted growth stages.
var validStages = map[string]bool{
	model.StageSown:       true,
	model.StageGrowing:    true,
	model.StageFlowering:  true,
	model.StageHarvesting: true,
	model.StageHarvested:  true,
}

// CropService provides crop tracking operations.
type CropService interface {
	Add(ctx context.Context, req *dto.CropCreateRequest) (*model.Crop, error)
	List(ctx context.Context) ([]model.Crop, error)
	UpdateStage(ctx context.Context, id primitive.ObjectID, stage string) (*model.Crop, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CropServiceImpl implements CropService.
type CropServiceImpl struct {
	cropRepo repository.CropRepositoryInterface
}

// NewCropService creates a new crop service.
func NewCropService(cropRepo repository.CropRepositoryInterface) CropService {
	return &CropServiceImpl{cropRepo: cropRepo}
}

// Add registers a new planting. New crops start in the Sown stage unless the
// request names another valid stage.
func (s *CropServiceImpl) Add(ctx context.Context, req *dto.CropCreateRequest) (*model.Crop, error) {
	stage := req.Stage
	if stage == "" {
		stage = model.StageSown
	}
	if !validStages[stage] {
		return nil, ErrInvalidStage
	}

	sownDate := req.SownDate
	if sownDate == "" {
		sownDate = time.Now().Format("02 Jan 2006")
	}

	crop := &model.Crop{
		Crop:            req.Crop,
		Plot:            req.Plot,
		SownDate:        sownDate,
		Stage:           stage,
		ExpectedHarvest: req.ExpectedHarvest,
		Notes:           req.Notes,
	}
	if err := s.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// List returns all tracked crops, newest first.
func (s *CropServiceImpl) List(ctx context.Context) ([]model.Crop, error) {
	return s.cropRepo.List(ctx)
}

// UpdateStage moves a crop to a new growth stage.
func (s *CropServiceImpl) UpdateStage(ctx context.Context, id primitive.ObjectID, stage string) (*model.Crop, error) {
	if !validStages[stage] {
		return nil, ErrInvalidStage
	}

	crop, err := s.cropRepo.UpdateStage(ctx, id, stage)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, ErrCropNotFound
	}
	return crop, nil
}

// Delete removes a crop from tracking.
func (s *CropServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.cropRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCropNotFound
	}
	return err
}
