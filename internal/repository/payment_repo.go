package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByID(id int64) (*entity.Payment, error) {
	var p entity.Payment
	err := r.db.
		Select("payments.*, workers.name AS worker_name").
		Joins("LEFT JOIN workers ON workers.id = payments.worker_id").
		First(&p, "payments.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type PaymentListParams struct {
	WorkerID int64
	Method   string
}

func (r *PaymentRepository) List(params PaymentListParams) ([]entity.Payment, error) {
	query := r.db.Model(&entity.Payment{}).
		Select("payments.*, workers.name AS worker_name").
		Joins("LEFT JOIN workers ON workers.id = payments.worker_id")
	if params.WorkerID != 0 {
		query = query.Where("payments.worker_id = ?", params.WorkerID)
	}
	if params.Method != "" {
		query = query.Where("payments.payment_method = ?", params.Method)
	}
	var items []entity.Payment
	err := query.Order("payments.created_at DESC").Find(&items).Error
	return items, err
}

func (r *PaymentRepository) Update(p *entity.Payment) error {
	return r.db.Save(p).Error
}

func (r *PaymentRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
