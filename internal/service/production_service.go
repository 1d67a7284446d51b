package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type ProductionService struct {
	repo *repository.ProductionRepository
	db   *gorm.DB
}

func NewProductionService(repo *repository.ProductionRepository, db *gorm.DB) *ProductionService {
	return &ProductionService{repo: repo, db: db}
}

type ProductionRequest struct {
	DistributionID int64  `json:"distribution_id" binding:"required"`
	Quantity       int64  `json:"quantity" binding:"required"`
	ProductionDate string `json:"production_date" binding:"required"`
	Quality        string `json:"quality" binding:"required"`
	WarehouseID    *int64 `json:"warehouse_id"`
	Notes          string `json:"notes"`
}

func validQuality(quality string) bool {
	switch quality {
	case entity.QualityExcellent, entity.QualityGood,
		entity.QualityAcceptable, entity.QualityRejected:
		return true
	}
	return false
}

// Create records output against a distribution and marks the distribution
// completed. The insert and the status flip are one transaction.
func (s *ProductionService) Create(req ProductionRequest) (*entity.Production, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if !validQuality(req.Quality) {
		return nil, fmt.Errorf("unknown quality grade %q: %w", req.Quality, ErrValidation)
	}
	prodDate, err := parseDate("production_date", req.ProductionDate)
	if err != nil {
		return nil, err
	}

	p := &entity.Production{
		DistributionID: req.DistributionID,
		Quantity:       req.Quantity,
		ProductionDate: prodDate,
		Quality:        req.Quality,
		WarehouseID:    req.WarehouseID,
		Notes:          req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var d entity.Distribution
		if err := tx.First(&d, req.DistributionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("distribution %d not found: %w", req.DistributionID, ErrValidation)
			}
			return err
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Distribution{}).
			Where("id = ?", req.DistributionID).
			Update("status", entity.DistributionStatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductionService) GetByID(id int64) (*entity.Production, error) {
	return s.repo.GetByID(id)
}

func (s *ProductionService) List(params repository.ProductionListParams) ([]entity.Production, error) {
	return s.repo.List(params)
}

type UpdateProductionRequest struct {
	Quantity       int64  `json:"quantity" binding:"required"`
	ProductionDate string `json:"production_date" binding:"required"`
	Quality        string `json:"quality" binding:"required"`
	WarehouseID    *int64 `json:"warehouse_id"`
	Notes          string `json:"notes"`
}

func (s *ProductionService) Update(id int64, req UpdateProductionRequest) (*entity.Production, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if !validQuality(req.Quality) {
		return nil, fmt.Errorf("unknown quality grade %q: %w", req.Quality, ErrValidation)
	}
	prodDate, err := parseDate("production_date", req.ProductionDate)
	if err != nil {
		return nil, err
	}

	var p entity.Production
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	p.Quantity = req.Quantity
	p.ProductionDate = prodDate
	p.Quality = req.Quality
	p.WarehouseID = req.WarehouseID
	p.Notes = req.Notes
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a production record. When it was the last one for its
// distribution the status reverts to pending, in the same transaction.
func (s *ProductionService) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p entity.Production
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.Production{}, id).Error; err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&entity.Production{}).
			Where("distribution_id = ?", p.DistributionID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
		return tx.Model(&entity.Distribution{}).
			Where("id = ?", p.DistributionID).
			Update("status", entity.DistributionStatusPending).Error
	})
}
