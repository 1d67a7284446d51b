package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type ProductionHandler struct {
	svc *service.ProductionService
}

func NewProductionHandler(svc *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

func (h *ProductionHandler) List(c *gin.Context) {
	params := repository.ProductionListParams{
		DistributionID: queryInt64(c, "distribution_id"),
		Quality:        c.Query("quality"),
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *ProductionHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	p, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, p)
}

// Create records production output; the parent distribution becomes
// completed in the same transaction.
func (h *ProductionHandler) Create(c *gin.Context) {
	var req service.ProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, p)
}

func (h *ProductionHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, p)
}

// Delete removes the record; a distribution left with no production reverts
// to pending.
func (h *ProductionHandler) Delete(c *gin.Context) {
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
