package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingohub/admind/internal/models"
)

func (r *Router) listPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.Posts()})
}

type engagementRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (r *Router) toggleLike(c *gin.Context) {
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	r.provider.Actions.ToggleLike(c.Param("id"), req.UserID)
	c.Status(http.StatusNoContent)
}

func (r *Router) toggleView(c *gin.Context) {
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	r.provider.Actions.ToggleView(c.Param("id"), req.UserID)
	c.Status(http.StatusNoContent)
}

func (r *Router) softDeleteComment(c *gin.Context) {
	r.provider.Actions.SoftDeleteComment(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (r *Router) restoreComment(c *gin.Context) {
	r.provider.Actions.RestoreComment(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (r *Router) likedPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.LikedPostsByUser(c.Param("id"))})
}

func (r *Router) commentedPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.CommentedPostsByUser(c.Param("id"))})
}

func (r *Router) viewedPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.ViewedPostsByUser(c.Param("id"))})
}

func (r *Router) removedComments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": r.provider.RemovedCommentsByUser(c.Param("id"))})
}

type userUpdateRequest struct {
	Name            *string `json:"name,omitempty"`
	Role            *string `json:"role,omitempty"`
	CommunityPoints *int    `json:"community_points,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

func (r *Router) updateUser(c *gin.Context) {
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}

	r.provider.Actions.UpdateUser(c.Param("id"), func(u models.User) models.User {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.CommunityPoints != nil {
			u.CommunityPoints = *req.CommunityPoints
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		return u
	})
	c.Status(http.StatusNoContent)
}
