package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/m06522052-gif/AqeelApp/internal/config"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"gorm.io/gorm"
)

// ErrValidation marks failures caught before any storage write. Handlers map
// it to a 400 instead of a storage error code.
var ErrValidation = errors.New("validation failed")

// Services bundles the domain services.
type Services struct {
	Auth         *AuthService
	User         *UserService
	Warehouse    *WarehouseService
	Batch        *BatchService
	Worker       *WorkerService
	Distribution *DistributionService
	Production   *ProductionService
	Payment      *PaymentService
	Movement     *MovementService
	Material     *MaterialService
	Report       *ReportService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, jwtCfg config.JWTConfig) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, jwtCfg),
		User:         NewUserService(repos.User),
		Warehouse:    NewWarehouseService(repos.Warehouse),
		Batch:        NewBatchService(repos.Batch, repos.Distribution),
		Worker:       NewWorkerService(repos.Worker),
		Distribution: NewDistributionService(repos.Distribution, repos.Batch, repos.Worker, db),
		Production:   NewProductionService(repos.Production, db),
		Payment:      NewPaymentService(repos.Payment, repos.Worker),
		Movement:     NewMovementService(repos.Movement, repos.Warehouse, repos.Batch),
		Material:     NewMaterialService(repos.Material),
		Report:       NewReportService(db),
	}
}

const dateLayout = "2006-01-02"

// parseDate accepts the YYYY-MM-DD strings the forms submit.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required: %w", field, ErrValidation)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, ErrValidation)
	}
	return t, nil
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, ErrValidation)
	}
	return &t, nil
}
