package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

// MovementService records stock movement log entries. A movement never
// mutates warehouse or batch quantities; it is an audit trail only.
type MovementService struct {
	repo       *repository.MovementRepository
	warehouses *repository.WarehouseRepository
	batches    *repository.BatchRepository
}

func NewMovementService(repo *repository.MovementRepository, warehouses *repository.WarehouseRepository, batches *repository.BatchRepository) *MovementService {
	return &MovementService{repo: repo, warehouses: warehouses, batches: batches}
}

type MovementRequest struct {
	MovementType    string `json:"movement_type" binding:"required"`
	FromWarehouseID *int64 `json:"from_warehouse_id"`
	ToWarehouseID   *int64 `json:"to_warehouse_id"`
	BatchID         *int64 `json:"batch_id"`
	Quantity        int64  `json:"quantity" binding:"required"`
	Responsible     string `json:"responsible" binding:"max=100"`
	Notes           string `json:"notes"`
	MovementDate    string `json:"movement_date" binding:"required"`
}

func (s *MovementService) validate(req MovementRequest) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	switch req.MovementType {
	case entity.MovementTransfer:
		if req.FromWarehouseID == nil || req.ToWarehouseID == nil {
			return fmt.Errorf("transfer requires both warehouses: %w", ErrValidation)
		}
	case entity.MovementInbound:
		if req.ToWarehouseID == nil {
			return fmt.Errorf("inbound requires a destination warehouse: %w", ErrValidation)
		}
	case entity.MovementOutbound:
		if req.FromWarehouseID == nil {
			return fmt.Errorf("outbound requires a source warehouse: %w", ErrValidation)
		}
	case entity.MovementAdjustment:
		if req.FromWarehouseID == nil && req.ToWarehouseID == nil {
			return fmt.Errorf("adjustment requires a warehouse: %w", ErrValidation)
		}
	default:
		return fmt.Errorf("unknown movement type %q: %w", req.MovementType, ErrValidation)
	}
	return nil
}

func (s *MovementService) Create(req MovementRequest) (*entity.InventoryMovement, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	moveDate, err := parseDate("movement_date", req.MovementDate)
	if err != nil {
		return nil, err
	}
	for _, wid := range []*int64{req.FromWarehouseID, req.ToWarehouseID} {
		if wid == nil {
			continue
		}
		if _, err := s.warehouses.GetByID(*wid); err != nil {
			return nil, fmt.Errorf("warehouse %d not found: %w", *wid, ErrValidation)
		}
	}
	if req.BatchID != nil {
		if _, err := s.batches.GetByID(*req.BatchID); err != nil {
			return nil, fmt.Errorf("batch %d not found: %w", *req.BatchID, ErrValidation)
		}
	}

	m := &entity.InventoryMovement{
		MovementType:    req.MovementType,
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		BatchID:         req.BatchID,
		Quantity:        req.Quantity,
		Responsible:     req.Responsible,
		Notes:           req.Notes,
		MovementDate:    moveDate,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MovementService) GetByID(id int64) (*entity.InventoryMovement, error) {
	return s.repo.GetByID(id)
}

func (s *MovementService) List(params repository.MovementListParams) ([]entity.InventoryMovement, error) {
	return s.repo.List(params)
}

func (s *MovementService) Delete(id int64) error {
	return s.repo.Delete(id)
}
