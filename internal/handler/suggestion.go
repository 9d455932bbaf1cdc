package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/service"
)

type SuggestionHandler struct {
	svc *service.SuggestionService
}

func NewSuggestionHandler(svc *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

func (h *SuggestionHandler) Search(c *gin.Context) {
	suggestions, err := h.svc.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, err, "Suggestions not found")
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (h *SuggestionHandler) Create(c *gin.Context) {
	var req service.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid suggestion data"})
		return
	}
	suggestion, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Suggestion not found")
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}
