package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) List(c *gin.Context) {
	params := repository.PaymentListParams{
		WorkerID: queryInt64(c, "worker_id"),
		Method:   c.Query("payment_method"),
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func (h *PaymentHandler) Get(c *gin.Context) {
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

func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.PaymentRequest
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

func (h *PaymentHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.PaymentRequest
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

func (h *PaymentHandler) Delete(c *gin.Context) {
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
