package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/service"
)

type ProgramHandler struct {
	svc *service.ProgramService
}

func NewProgramHandler(svc *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Program not found")
		return
	}
	c.JSON(http.StatusOK, programs)
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	program, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Program not found")
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid program data"})
		return
	}
	program, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Program not found")
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid program data"})
		return
	}
	program, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Program not found")
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Program not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
}
