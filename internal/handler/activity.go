package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/service"
)

type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Activity not found")
		return
	}
	c.JSON(http.StatusOK, activities)
}

// ListByProgram returns the activities scoped to one program. Orphans of a
// deleted program still show up here; program deletion does not cascade.
func (h *ActivityHandler) ListByProgram(c *gin.Context) {
	programID, ok := parseID(c, "id")
	if !ok {
		return
	}
	activities, err := h.svc.ListByProgram(c.Request.Context(), programID)
	if err != nil {
		respondError(c, err, "Activity not found")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity data"})
		return
	}
	activity, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Activity not found")
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity data"})
		return
	}
	activity, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Activity not found")
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Activity not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
