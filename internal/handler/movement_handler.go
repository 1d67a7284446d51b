package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type MovementHandler struct {
	svc *service.MovementService
}

func NewMovementHandler(svc *service.MovementService) *MovementHandler {
	return &MovementHandler{svc: svc}
}

func (h *MovementHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	params := repository.MovementListParams{
		MovementType: c.Query("movement_type"),
		WarehouseID:  queryInt64(c, "warehouse_id"),
		BatchID:      queryInt64(c, "batch_id"),
		Limit:        limit,
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *MovementHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, m)
}

func (h *MovementHandler) Create(c *gin.Context) {
	var req service.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, m)
}

func (h *MovementHandler) Delete(c *gin.Context) {
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
