package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type BatchHandler struct {
	svc *service.BatchService
}

func NewBatchHandler(svc *service.BatchService) *BatchHandler {
	return &BatchHandler{svc: svc}
}

func (h *BatchHandler) List(c *gin.Context) {
	params := repository.BatchListParams{
		Status:      c.Query("status"),
		WarehouseID: queryInt64(c, "warehouse_id"),
		Supplier:    c.Query("supplier"),
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

// Get returns the batch together with its remaining quantity and the
// distributions recorded against it.
func (h *BatchHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	detail, err := h.svc.GetDetail(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, detail)
}

func (h *BatchHandler) Create(c *gin.Context) {
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, b)
}

func (h *BatchHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, b)
}

func (h *BatchHandler) Delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
