package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type WorkerService struct {
	repo *repository.WorkerRepository
}

func NewWorkerService(repo *repository.WorkerRepository) *WorkerService {
	return &WorkerService{repo: repo}
}

type WorkerRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Phone            string `json:"phone" binding:"max=32"`
	Address          string `json:"address" binding:"max=255"`
	RegistrationDate string `json:"registration_date" binding:"required"`
	Status           string `json:"status"`
}

func (s *WorkerService) Create(req WorkerRequest) (*entity.Worker, error) {
	regDate, err := parseDate("registration_date", req.RegistrationDate)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.WorkerStatusActive
	}
	if status != entity.WorkerStatusActive && status != entity.WorkerStatusInactive {
		return nil, fmt.Errorf("unknown worker status %q: %w", status, ErrValidation)
	}
	w := &entity.Worker{
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		RegistrationDate: regDate,
		Status:           status,
	}
	if err := s.repo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkerService) GetByID(id int64) (*entity.Worker, error) {
	return s.repo.GetByID(id)
}

func (s *WorkerService) List(onlyActive bool) ([]entity.Worker, error) {
	return s.repo.List(onlyActive)
}

func (s *WorkerService) Update(id int64, req WorkerRequest) (*entity.Worker, error) {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	regDate, err := parseDate("registration_date", req.RegistrationDate)
	if err != nil {
		return nil, err
	}
	if req.Status != "" && req.Status != entity.WorkerStatusActive && req.Status != entity.WorkerStatusInactive {
		return nil, fmt.Errorf("unknown worker status %q: %w", req.Status, ErrValidation)
	}
	w.Name = req.Name
	w.Phone = req.Phone
	w.Address = req.Address
	w.RegistrationDate = regDate
	if req.Status != "" {
		w.Status = req.Status
	}
	if err := s.repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete fails while distributions or payments still reference the worker.
func (s *WorkerService) Delete(id int64) error {
	return s.repo.Delete(id)
}

func (s *WorkerService) Stats(id int64) (*repository.WorkerStats, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}
	return s.repo.Stats(id)
}
