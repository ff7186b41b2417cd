package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (r *Router) listNotifications(c *gin.Context) {
	snap := r.provider.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": snap.Notifications})
}

type notificationRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Audience string `json:"audience" binding:"required"`
	UserID   string `json:"user_id"`
}

func (r *Router) createNotification(c *gin.Context) {
	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	id := r.provider.Actions.CreateNotification(req.Title, req.Content, req.Audience, req.UserID)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (r *Router) markNotificationRead(c *gin.Context) {
	r.provider.Actions.MarkNotificationRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type publishRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (r *Router) publishNotifications(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	published := r.provider.Actions.PublishNotifications(req.IDs)
	c.JSON(http.StatusOK, gin.H{"published": published})
}

func (r *Router) listAuditLog(c *gin.Context) {
	snap := r.provider.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": snap.AuditLog})
}
