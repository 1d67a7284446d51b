package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type WorkerHandler struct {
	svc *service.WorkerService
}

func NewWorkerHandler(svc *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{svc: svc}
}

func (h *WorkerHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Query("only_active") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *WorkerHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	w, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, w)
}

// Stats returns the worker detail counters: distributions, production
// records and the total paid out.
func (h *WorkerHandler) Stats(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	stats, err := h.svc.Stats(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, stats)
}

func (h *WorkerHandler) Create(c *gin.Context) {
	var req service.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	w, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, w)
}

func (h *WorkerHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	w, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, w)
}

func (h *WorkerHandler) Delete(c *gin.Context) {
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
