package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type MaterialService struct {
	repo *repository.MaterialRepository
}

func NewMaterialService(repo *repository.MaterialRepository) *MaterialService {
	return &MaterialService{repo: repo}
}

type MaterialRequest struct {
	MaterialNumber string  `json:"material_number" binding:"required,max=50"`
	Name           string  `json:"name" binding:"required,max=100"`
	Description    string  `json:"description"`
	Unit           string  `json:"unit" binding:"required,max=20"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Supplier       string  `json:"supplier" binding:"max=100"`
	WarehouseID    int64   `json:"warehouse_id" binding:"required"`
	MinimumStock   float64 `json:"minimum_stock"`
	Status         string  `json:"status"`
}

func (s *MaterialService) validate(req MaterialRequest) error {
	if req.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}
	if req.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative: %w", ErrValidation)
	}
	if req.MinimumStock < 0 {
		return fmt.Errorf("minimum stock must not be negative: %w", ErrValidation)
	}
	if req.Status != "" && req.Status != entity.MaterialStatusActive && req.Status != entity.MaterialStatusInactive {
		return fmt.Errorf("unknown material status %q: %w", req.Status, ErrValidation)
	}
	return nil
}

func (s *MaterialService) Create(req MaterialRequest) (*entity.Material, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.MaterialStatusActive
	}
	m := &entity.Material{
		MaterialNumber: req.MaterialNumber,
		Name:           req.Name,
		Description:    req.Description,
		Unit:           req.Unit,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Supplier:       req.Supplier,
		WarehouseID:    req.WarehouseID,
		MinimumStock:   req.MinimumStock,
		Status:         status,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) GetByID(id int64) (*entity.Material, error) {
	return s.repo.GetByID(id)
}

func (s *MaterialService) List(params repository.MaterialListParams) ([]entity.Material, error) {
	return s.repo.List(params)
}

func (s *MaterialService) Update(id int64, req MaterialRequest) (*entity.Material, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.MaterialNumber = req.MaterialNumber
	m.Name = req.Name
	m.Description = req.Description
	m.Unit = req.Unit
	m.Quantity = req.Quantity
	m.UnitPrice = req.UnitPrice
	m.Supplier = req.Supplier
	m.WarehouseID = req.WarehouseID
	m.MinimumStock = req.MinimumStock
	if req.Status != "" {
		m.Status = req.Status
	}
	if err := s.repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// Alerts lists materials whose stock fell to or below their threshold.
func (s *MaterialService) Alerts() ([]entity.Material, error) {
	return s.repo.LowStock()
}
