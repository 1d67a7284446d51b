package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type BatchService struct {
	repo      *repository.BatchRepository
	distsRepo *repository.DistributionRepository
}

func NewBatchService(repo *repository.BatchRepository, distsRepo *repository.DistributionRepository) *BatchService {
	return &BatchService{repo: repo, distsRepo: distsRepo}
}

type BatchRequest struct {
	BatchNumber string  `json:"batch_number" binding:"required,max=50"`
	Supplier    string  `json:"supplier" binding:"required,max=100"`
	ReceiveDate string  `json:"receive_date" binding:"required"`
	BagType     string  `json:"bag_type" binding:"required"`
	Quantity    int64   `json:"quantity" binding:"required"`
	Price       float64 `json:"price"`
	Responsible string  `json:"responsible" binding:"max=100"`
	WarehouseID *int64  `json:"warehouse_id"`
	Notes       string  `json:"notes"`
	Status      string  `json:"status"`
}

func (s *BatchService) validate(req BatchRequest) error {
	switch req.BagType {
	case entity.BagType4, entity.BagType5, entity.BagType6:
	default:
		return fmt.Errorf("unknown bag type %q: %w", req.BagType, ErrValidation)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if req.Status != "" && req.Status != entity.BatchStatusActive && req.Status != entity.BatchStatusInactive {
		return fmt.Errorf("unknown batch status %q: %w", req.Status, ErrValidation)
	}
	return nil
}

func (s *BatchService) Create(req BatchRequest) (*entity.Batch, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	receiveDate, err := parseDate("receive_date", req.ReceiveDate)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.BatchStatusActive
	}
	b := &entity.Batch{
		BatchNumber: req.BatchNumber,
		Supplier:    req.Supplier,
		ReceiveDate: receiveDate,
		BagType:     req.BagType,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Responsible: req.Responsible,
		WarehouseID: req.WarehouseID,
		Notes:       req.Notes,
		Status:      status,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	b.RemainingQuantity = b.Quantity
	return b, nil
}

// BatchDetail combines the batch with its distributions, as the batch detail
// screen shows them together.
type BatchDetail struct {
	*entity.Batch
	Distributions []entity.Distribution `json:"distributions"`
}

func (s *BatchService) GetDetail(id int64) (*BatchDetail, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	dists, err := s.distsRepo.List(repository.DistributionListParams{BatchID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to load batch distributions: %w", err)
	}
	return &BatchDetail{Batch: b, Distributions: dists}, nil
}

func (s *BatchService) List(params repository.BatchListParams) ([]entity.Batch, error) {
	return s.repo.List(params)
}

func (s *BatchService) Update(id int64, req BatchRequest) (*entity.Batch, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	receiveDate, err := parseDate("receive_date", req.ReceiveDate)
	if err != nil {
		return nil, err
	}

	// shrinking a batch below what is already distributed would make the
	// remaining quantity negative
	distributed, err := s.repo.DistributedQuantity(id)
	if err != nil {
		return nil, fmt.Errorf("failed to sum distributions: %w", err)
	}
	if req.Quantity < distributed {
		return nil, fmt.Errorf("quantity %d is below the %d already distributed: %w",
			req.Quantity, distributed, ErrValidation)
	}

	b.BatchNumber = req.BatchNumber
	b.Supplier = req.Supplier
	b.ReceiveDate = receiveDate
	b.BagType = req.BagType
	b.Quantity = req.Quantity
	b.Price = req.Price
	b.Responsible = req.Responsible
	b.WarehouseID = req.WarehouseID
	b.Notes = req.Notes
	if req.Status != "" {
		b.Status = req.Status
	}
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	b.RemainingQuantity = b.Quantity - distributed
	return b, nil
}

// Delete fails while distributions or movements still reference the batch.
func (s *BatchService) Delete(id int64) error {
	return s.repo.Delete(id)
}
