package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/pkg/translate"
)

type TranslateHandler struct {
	engine *translate.Engine
}

func NewTranslateHandler(engine *translate.Engine) *TranslateHandler {
	return &TranslateHandler{engine: engine}
}

func (h *TranslateHandler) Translate(c *gin.Context) {
	var req translate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text and target language are required"})
		return
	}
	c.JSON(http.StatusOK, h.engine.Translate(req))
}
