package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type MaterialHandler struct {
	svc *service.MaterialService
}

func NewMaterialHandler(svc *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

// materialView augments the stored row with the derived low-stock flag.
type materialView struct {
	*entity.Material
	IsLowStock bool `json:"is_low_stock"`
}

func toMaterialView(m *entity.Material) materialView {
	return materialView{Material: m, IsLowStock: m.IsLowStock()}
}

func (h *MaterialHandler) List(c *gin.Context) {
	params := repository.MaterialListParams{
		WarehouseID: queryInt64(c, "warehouse_id"),
		Status:      c.Query("status"),
		Keyword:     c.Query("keyword"),
		LowStock:    c.Query("low_stock") == "true",
	}
	items, err := h.svc.List(params)
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]materialView, 0, len(items))
	for i := range items {
		views = append(views, toMaterialView(&items[i]))
	}
	ok(c, views)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, toMaterialView(m))
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, toMaterialView(m))
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, toMaterialView(m))
}

func (h *MaterialHandler) Delete(c *gin.Context) {
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

// Alerts lists materials at or below their minimum stock.
func (h *MaterialHandler) Alerts(c *gin.Context) {
	items, err := h.svc.Alerts()
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]materialView, 0, len(items))
	for i := range items {
		views = append(views, toMaterialView(&items[i]))
	}
	ok(c, views)
}
