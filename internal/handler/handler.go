package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/service"
)

// Handlers bundles the HTTP handlers.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Warehouse    *WarehouseHandler
	Batch        *BatchHandler
	Worker       *WorkerHandler
	Distribution *DistributionHandler
	Production   *ProductionHandler
	Payment      *PaymentHandler
	Movement     *MovementHandler
	Material     *MaterialHandler
	Report       *ReportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Warehouse:    NewWarehouseHandler(services.Warehouse),
		Batch:        NewBatchHandler(services.Batch),
		Worker:       NewWorkerHandler(services.Worker),
		Distribution: NewDistributionHandler(services.Distribution),
		Production:   NewProductionHandler(services.Production),
		Payment:      NewPaymentHandler(services.Payment),
		Movement:     NewMovementHandler(services.Movement),
		Material:     NewMaterialHandler(services.Material),
		Report:       NewReportHandler(services.Report),
	}
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": message})
}

// fail maps the error taxonomy to HTTP: validation 400, not-found 404,
// uniqueness conflict 409, foreign-key conflict 409, everything else 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 40100, "message": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 40400, "message": "record not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"code": 40900, "message": "this number already exists"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusConflict, gin.H{"code": 40901, "message": "cannot delete, related records exist"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}

// pathID parses the :id segment; replies 400 itself when malformed.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return v
}
