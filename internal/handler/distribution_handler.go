package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type DistributionHandler struct {
	svc *service.DistributionService
}

func NewDistributionHandler(svc *service.DistributionService) *DistributionHandler {
	return &DistributionHandler{svc: svc}
}

func (h *DistributionHandler) List(c *gin.Context) {
	params := repository.DistributionListParams{
		Status:   c.Query("status"),
		WorkerID: queryInt64(c, "worker_id"),
		BatchID:  queryInt64(c, "batch_id"),
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *DistributionHandler) Get(c *gin.Context) {
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

func (h *DistributionHandler) Create(c *gin.Context) {
	var req service.DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	d, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, d)
}

func (h *DistributionHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	d, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, d)
}

func (h *DistributionHandler) Delete(c *gin.Context) {
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
