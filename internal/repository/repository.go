package repository

import "gorm.io/gorm"

// Repositories bundles one repository per entity.
type Repositories struct {
	User         *UserRepository
	Warehouse    *WarehouseRepository
	Batch        *BatchRepository
	Worker       *WorkerRepository
	Distribution *DistributionRepository
	Production   *ProductionRepository
	Payment      *PaymentRepository
	Movement     *MovementRepository
	Material     *MaterialRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Warehouse:    NewWarehouseRepository(db),
		Batch:        NewBatchRepository(db),
		Worker:       NewWorkerRepository(db),
		Distribution: NewDistributionRepository(db),
		Production:   NewProductionRepository(db),
		Payment:      NewPaymentRepository(db),
		Movement:     NewMovementRepository(db),
		Material:     NewMaterialRepository(db),
	}
}
