package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/m06522052-gif/AqeelApp/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.svc.Login(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, result)
}
