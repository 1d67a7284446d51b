package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type PaymentService struct {
	repo    *repository.PaymentRepository
	workers *repository.WorkerRepository
}

func NewPaymentService(repo *repository.PaymentRepository, workers *repository.WorkerRepository) *PaymentService {
	return &PaymentService{repo: repo, workers: workers}
}

type PaymentRequest struct {
	WorkerID       int64   `json:"worker_id" binding:"required"`
	DistributionID *int64  `json:"distribution_id"`
	Amount         float64 `json:"amount" binding:"required"`
	PaymentDate    string  `json:"payment_date" binding:"required"`
	PaymentMethod  string  `json:"payment_method" binding:"required"`
	Notes          string  `json:"notes"`
}

func validPaymentMethod(method string) bool {
	switch method {
	case entity.PaymentMethodCash, entity.PaymentMethodBankTransfer, entity.PaymentMethodCheck:
		return true
	}
	return false
}

func (s *PaymentService) Create(req PaymentRequest) (*entity.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrValidation)
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, ErrValidation)
	}
	payDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.workers.GetByID(req.WorkerID); err != nil {
		return nil, fmt.Errorf("worker %d not found: %w", req.WorkerID, ErrValidation)
	}
	p := &entity.Payment{
		WorkerID:       req.WorkerID,
		DistributionID: req.DistributionID,
		Amount:         req.Amount,
		PaymentDate:    payDate,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) GetByID(id int64) (*entity.Payment, error) {
	return s.repo.GetByID(id)
}

func (s *PaymentService) List(params repository.PaymentListParams) ([]entity.Payment, error) {
	return s.repo.List(params)
}

func (s *PaymentService) Update(id int64, req PaymentRequest) (*entity.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrValidation)
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("unknown payment method %q: %w", req.PaymentMethod, ErrValidation)
	}
	payDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	p.WorkerID = req.WorkerID
	p.DistributionID = req.DistributionID
	p.Amount = req.Amount
	p.PaymentDate = payDate
	p.PaymentMethod = req.PaymentMethod
	p.Notes = req.Notes
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Delete(id int64) error {
	return s.repo.Delete(id)
}
