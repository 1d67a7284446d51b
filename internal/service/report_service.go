package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
)

// ReportService answers the dashboard and reports screens with read-only
// aggregates over the store.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DashboardStats mirrors the counters on the home dashboard.
type DashboardStats struct {
	BatchCount           int64   `json:"batch_count"`
	ActiveWorkers        int64   `json:"active_workers"`
	PendingDistributions int64   `json:"pending_distributions"`
	ProductionCount      int64   `json:"production_count"`
	PaymentTotal         float64 `json:"payment_total"`
	ActiveWarehouses     int64   `json:"active_warehouses"`
}

func (s *ReportService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&entity.Batch{}).Count(&stats.BatchCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entity.Worker{}).
		Where("status = ?", entity.WorkerStatusActive).
		Count(&stats.ActiveWorkers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entity.Distribution{}).
		Where("status = ?", entity.DistributionStatusPending).
		Count(&stats.PendingDistributions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entity.Production{}).Count(&stats.ProductionCount).Error; err != nil {
		return nil, err
	}
	var paid struct{ Total float64 }
	if err := s.db.Raw(`SELECT COALESCE(SUM(amount), 0) AS total FROM payments`).
		Scan(&paid).Error; err != nil {
		return nil, err
	}
	stats.PaymentTotal = paid.Total
	if err := s.db.Model(&entity.Warehouse{}).
		Where("status = ?", entity.WarehouseActive).
		Count(&stats.ActiveWarehouses).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// WorkerSummary is one row of the worker rollup report.
type WorkerSummary struct {
	WorkerID          int64   `json:"worker_id"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	DistributionCount int64   `json:"distribution_count"`
	DistributedQty    int64   `json:"distributed_qty"`
	ProducedQty       int64   `json:"produced_qty"`
	PaidTotal         float64 `json:"paid_total"`
}

// Summary combines the dashboard counters with the per-worker rollup.
type Summary struct {
	Totals  DashboardStats  `json:"totals"`
	Workers []WorkerSummary `json:"workers"`
}

func (s *ReportService) Summary() (*Summary, error) {
	totals, err := s.Dashboard()
	if err != nil {
		return nil, err
	}
	workers, err := s.workerSummaries()
	if err != nil {
		return nil, err
	}
	return &Summary{Totals: *totals, Workers: workers}, nil
}

func (s *ReportService) workerSummaries() ([]WorkerSummary, error) {
	var rows []WorkerSummary
	err := s.db.Raw(`
		SELECT
			w.id AS worker_id,
			w.name AS name,
			w.status AS status,
			COALESCE((SELECT COUNT(*) FROM distributions d WHERE d.worker_id = w.id), 0) AS distribution_count,
			COALESCE((SELECT SUM(d.quantity) FROM distributions d WHERE d.worker_id = w.id), 0) AS distributed_qty,
			COALESCE((SELECT SUM(p.quantity) FROM production p
				JOIN distributions d ON d.id = p.distribution_id
				WHERE d.worker_id = w.id), 0) AS produced_qty,
			COALESCE((SELECT SUM(pay.amount) FROM payments pay WHERE pay.worker_id = w.id), 0) AS paid_total
		FROM workers w
		ORDER BY w.name
	`).Scan(&rows).Error
	return rows, err
}

// ExportXLSX renders the summary as a two-sheet workbook.
func (s *ReportService) ExportXLSX() ([]byte, error) {
	summary, err := s.Summary()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const totalsSheet = "Totals"
	f.SetSheetName("Sheet1", totalsSheet)
	totalsRows := [][]interface{}{
		{"Metric", "Value"},
		{"Batches", summary.Totals.BatchCount},
		{"Active workers", summary.Totals.ActiveWorkers},
		{"Pending distributions", summary.Totals.PendingDistributions},
		{"Production records", summary.Totals.ProductionCount},
		{"Payments total", summary.Totals.PaymentTotal},
		{"Active warehouses", summary.Totals.ActiveWarehouses},
	}
	for i, row := range totalsRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(totalsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const workersSheet = "Workers"
	if _, err := f.NewSheet(workersSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Worker", "Status", "Distributions", "Distributed qty", "Produced qty", "Paid total"}
	if err := f.SetSheetRow(workersSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, w := range summary.Workers {
		row := []interface{}{w.Name, w.Status, w.DistributionCount, w.DistributedQty, w.ProducedQty, w.PaidTotal}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(workersSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	return buf.Bytes(), nil
}
