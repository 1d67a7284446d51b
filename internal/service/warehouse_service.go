package service

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type WarehouseService struct {
	repo *repository.WarehouseRepository
}

func NewWarehouseService(repo *repository.WarehouseRepository) *WarehouseService {
	return &WarehouseService{repo: repo}
}

type WarehouseRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"max=255"`
	Type        string `json:"type" binding:"required,max=50"`
	Responsible string `json:"responsible" binding:"max=100"`
	Status      *int   `json:"status"`
}

func (s *WarehouseService) Create(req WarehouseRequest) (*entity.Warehouse, error) {
	w := &entity.Warehouse{
		Name:        req.Name,
		Location:    req.Location,
		Type:        req.Type,
		Responsible: req.Responsible,
		Status:      entity.WarehouseActive,
	}
	if req.Status != nil {
		w.Status = *req.Status
	}
	if err := s.repo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WarehouseService) GetByID(id int64) (*entity.Warehouse, error) {
	return s.repo.GetByID(id)
}

func (s *WarehouseService) List(params repository.WarehouseListParams) ([]entity.Warehouse, error) {
	return s.repo.List(params)
}

func (s *WarehouseService) Update(id int64, req WarehouseRequest) (*entity.Warehouse, error) {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	w.Name = req.Name
	w.Location = req.Location
	w.Type = req.Type
	w.Responsible = req.Responsible
	if req.Status != nil {
		w.Status = *req.Status
	}
	if err := s.repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete fails while batches, materials or other records still reference the
// warehouse; the handler reports that as "related records exist".
func (s *WarehouseService) Delete(id int64) error {
	return s.repo.Delete(id)
}
