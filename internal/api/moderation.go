package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingohub/admind/internal/actions"
	"github.com/lingohub/admind/internal/models"
)

func (r *Router) listViolations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.Violations()})
}

type violationRequest struct {
	UserID     string   `json:"user_id" binding:"required"`
	TargetType string   `json:"target_type" binding:"required"`
	TargetID   string   `json:"target_id" binding:"required"`
	Severity   string   `json:"severity"`
	Reason     string   `json:"reason"`
	RuleIDs    []string `json:"rule_ids"`
}

func (r *Router) addViolation(c *gin.Context) {
	var req violationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}

	id, err := r.provider.Actions.AddViolation(
		req.UserID, models.TargetType(req.TargetType), req.TargetID,
		req.Severity, req.Reason, req.RuleIDs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (r *Router) removeViolationByTarget(c *gin.Context) {
	targetType := models.TargetType(c.Query("target_type"))
	targetID := c.Query("target_id")
	if !targetType.Valid() || targetID == "" {
		abortWithError(c, NewError(http.StatusBadRequest, "target_type and target_id are required"))
		return
	}

	if !r.provider.Actions.RemoveViolationByTarget(targetType, targetID) {
		abortWithError(c, actions.ErrViolationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listAppeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.Appeals()})
}

type appealRequest struct {
	ViolationID string `json:"violation_id" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
	Reason      string `json:"reason"`
}

func (r *Router) createAppeal(c *gin.Context) {
	var req appealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}

	id, err := r.provider.Actions.CreateAppeal(req.ViolationID, req.UserID, req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (r *Router) resolveAppeal(c *gin.Context) {
	var resolution actions.AppealResolution
	if err := c.ShouldBindJSON(&resolution); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	if resolution.Status != models.AppealAccepted && resolution.Status != models.AppealRejected {
		abortWithError(c, NewError(http.StatusBadRequest, "status must be accepted or rejected"))
		return
	}

	if err := r.provider.Actions.ResolveAppeal(c.Param("id"), resolution); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
