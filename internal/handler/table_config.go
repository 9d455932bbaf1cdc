package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/service"
)

type TableConfigHandler struct {
	svc *service.TableConfigService
}

func NewTableConfigHandler(svc *service.TableConfigService) *TableConfigHandler {
	return &TableConfigHandler{svc: svc}
}

func (h *TableConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.svc.GetConfig(c.Request.Context(), c.Param("tableName"))
	if err != nil {
		respondError(c, err, "Table configuration not found")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *TableConfigHandler) UpsertConfig(c *gin.Context) {
	var req service.UpsertTableConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table configuration"})
		return
	}
	cfg, err := h.svc.UpsertConfig(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Table configuration not found")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *TableConfigHandler) GetHeaders(c *gin.Context) {
	headers, err := h.svc.GetHeaders(c.Request.Context(), c.Param("tableName"))
	if err != nil {
		respondError(c, err, "Column headers not found")
		return
	}
	c.JSON(http.StatusOK, headers)
}

func (h *TableConfigHandler) UpsertHeader(c *gin.Context) {
	var req service.UpsertColumnHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid column header configuration"})
		return
	}
	header, err := h.svc.UpsertHeader(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Column header not found")
		return
	}
	c.JSON(http.StatusOK, header)
}
