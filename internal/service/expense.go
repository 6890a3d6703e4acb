package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// ErrExpenseNotFound is returned when an expense ID does not exist.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseService provides farm transaction operations.
type ExpenseService interface {
	Add(ctx context.Context, req *dto.ExpenseCreateRequest) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Summary(ctx context.Context) (*model.FinanceSummary, error)
}

// ExpenseServiceImpl implements ExpenseService.
type ExpenseServiceImpl struct {
	expenseRepo repository.ExpenseRepositoryInterface
	cropRepo    repository.CropRepositoryInterface
}

// NewExpenseService creates a new expense service. The crop repository is
// used to resolve crop names on listed transactions.
func NewExpenseService(
	expenseRepo repository.ExpenseRepositoryInterface,
	cropRepo repository.CropRepositoryInterface,
) ExpenseService {
	return &ExpenseServiceImpl{expenseRepo: expenseRepo, cropRepo: cropRepo}
}

// Add records a new income or expense transaction. A crop link, when
// present, must name an existing crop.
func (s *ExpenseServiceImpl) Add(ctx context.Context, req *dto.ExpenseCreateRequest) (*model.Expense, error) {
	expense := &model.Expense{
		Title:    req.Title,
		Amount:   req.Amount,
		Type:     req.Type,
		Category: req.Category,
		Date:     req.Date,
	}

	if req.CropID != "" {
		cropID, err := primitive.ObjectIDFromHex(req.CropID)
		if err != nil {
			return nil, &dto.ValidationError{Field: "crop_id", Message: "is not a valid ID"}
		}
		crop, err := s.cropRepo.GetByID(ctx, cropID)
		if err != nil {
			return nil, err
		}
		if crop == nil {
			return nil, ErrCropNotFound
		}
		expense.CropID = &cropID
		expense.CropName = crop.Crop
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List returns all transactions, newest first, with crop names resolved.
func (s *ExpenseServiceImpl) List(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve linked crop names; lookups are cached per distinct crop.
	names := make(map[primitive.ObjectID]string)
	for i := range expenses {
		id := expenses[i].CropID
		if id == nil {
			continue
		}
		name, ok := names[*id]
		if !ok {
			crop, err := s.cropRepo.GetByID(ctx, *id)
			if err != nil {
				return nil, err
			}
			if crop != nil {
				name = crop.Crop
			}
			names[*id] = name
		}
		expenses[i].CropName = name
	}
	return expenses, nil
}

// Delete removes a transaction.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.expenseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrExpenseNotFound
	}
	return err
}

// Summary aggregates all transactions into income, expense, and profit.
func (s *ExpenseServiceImpl) Summary(ctx context.Context) (*model.FinanceSummary, error) {
	return s.expenseRepo.Summary(ctx)
}
