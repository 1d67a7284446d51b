package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type DistributionService struct {
	repo    *repository.DistributionRepository
	batches *repository.BatchRepository
	workers *repository.WorkerRepository
	db      *gorm.DB
}

func NewDistributionService(repo *repository.DistributionRepository, batches *repository.BatchRepository, workers *repository.WorkerRepository, db *gorm.DB) *DistributionService {
	return &DistributionService{repo: repo, batches: batches, workers: workers, db: db}
}

type DistributionRequest struct {
	DistributionNumber     string `json:"distribution_number" binding:"max=50"`
	WorkerID               int64  `json:"worker_id" binding:"required"`
	BatchID                int64  `json:"batch_id" binding:"required"`
	Quantity               int64  `json:"quantity" binding:"required"`
	DistributionDate       string `json:"distribution_date" binding:"required"`
	ExpectedCompletionDate string `json:"expected_completion_date"`
	Status                 string `json:"status"`
}

func validDistributionStatus(status string) bool {
	switch status {
	case entity.DistributionStatusPending,
		entity.DistributionStatusInProgress,
		entity.DistributionStatusCompleted,
		entity.DistributionStatusCancelled:
		return true
	}
	return false
}

// Create assigns batch quantity to a worker. The over-distribution check and
// the insert run in one transaction so concurrent assignments cannot push the
// batch's remaining quantity below zero.
func (s *DistributionService) Create(req DistributionRequest) (*entity.Distribution, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	distDate, err := parseDate("distribution_date", req.DistributionDate)
	if err != nil {
		return nil, err
	}
	expected, err := parseOptionalDate("expected_completion_date", req.ExpectedCompletionDate)
	if err != nil {
		return nil, err
	}
	number := req.DistributionNumber
	if number == "" {
		number = generateDistributionNumber()
	}

	d := &entity.Distribution{
		DistributionNumber:     number,
		WorkerID:               req.WorkerID,
		BatchID:                req.BatchID,
		Quantity:               req.Quantity,
		DistributionDate:       distDate,
		ExpectedCompletionDate: expected,
		Status:                 entity.DistributionStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var worker entity.Worker
		if err := tx.First(&worker, req.WorkerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("worker %d not found: %w", req.WorkerID, ErrValidation)
			}
			return err
		}
		var batch entity.Batch
		if err := tx.First(&batch, req.BatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("batch %d not found: %w", req.BatchID, ErrValidation)
			}
			return err
		}
		var distributed struct{ Total int64 }
		if err := tx.Raw(`
			SELECT COALESCE(SUM(quantity), 0) AS total
			FROM distributions
			WHERE batch_id = ?
		`, req.BatchID).Scan(&distributed).Error; err != nil {
			return err
		}
		remaining := batch.Quantity - distributed.Total
		if req.Quantity > remaining {
			return fmt.Errorf("quantity %d exceeds the batch's remaining %d: %w",
				req.Quantity, remaining, ErrValidation)
		}
		return tx.Create(d).Error
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DistributionService) GetByID(id int64) (*entity.Distribution, error) {
	return s.repo.GetByID(id)
}

// DistributionDetail adds the per-quality production totals shown on the
// distribution detail screen.
type DistributionDetail struct {
	*entity.Distribution
	ProductionByQuality []repository.QualityBreakdown `json:"production_by_quality"`
}

func (s *DistributionService) GetDetail(id int64) (*DistributionDetail, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.repo.ProductionByQuality(id)
	if err != nil {
		return nil, fmt.Errorf("failed to sum production: %w", err)
	}
	return &DistributionDetail{Distribution: d, ProductionByQuality: breakdown}, nil
}

func (s *DistributionService) List(params repository.DistributionListParams) ([]entity.Distribution, error) {
	return s.repo.List(params)
}

func (s *DistributionService) Update(id int64, req DistributionRequest) (*entity.Distribution, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if req.Status != "" && !validDistributionStatus(req.Status) {
		return nil, fmt.Errorf("unknown distribution status %q: %w", req.Status, ErrValidation)
	}
	distDate, err := parseDate("distribution_date", req.DistributionDate)
	if err != nil {
		return nil, err
	}
	expected, err := parseOptionalDate("expected_completion_date", req.ExpectedCompletionDate)
	if err != nil {
		return nil, err
	}

	var updated *entity.Distribution
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var d entity.Distribution
		if err := tx.First(&d, id).Error; err != nil {
			return err
		}
		var batch entity.Batch
		if err := tx.First(&batch, req.BatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("batch %d not found: %w", req.BatchID, ErrValidation)
			}
			return err
		}
		// sum the other distributions of the target batch
		var distributed struct{ Total int64 }
		if err := tx.Raw(`
			SELECT COALESCE(SUM(quantity), 0) AS total
			FROM distributions
			WHERE batch_id = ? AND id <> ?
		`, req.BatchID, id).Scan(&distributed).Error; err != nil {
			return err
		}
		remaining := batch.Quantity - distributed.Total
		if req.Quantity > remaining {
			return fmt.Errorf("quantity %d exceeds the batch's remaining %d: %w",
				req.Quantity, remaining, ErrValidation)
		}

		if req.DistributionNumber != "" {
			d.DistributionNumber = req.DistributionNumber
		}
		d.WorkerID = req.WorkerID
		d.BatchID = req.BatchID
		d.Quantity = req.Quantity
		d.DistributionDate = distDate
		d.ExpectedCompletionDate = expected
		if req.Status != "" {
			d.Status = req.Status
		}
		if err := tx.Save(&d).Error; err != nil {
			return err
		}
		updated = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete fails while production rows or payments still reference the
// distribution.
func (s *DistributionService) Delete(id int64) error {
	return s.repo.Delete(id)
}

func generateDistributionNumber() string {
	now := time.Now()
	return fmt.Sprintf("D-%s%04d", now.Format("20060102"), now.UnixNano()%10000)
}
