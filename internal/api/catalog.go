package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lingohub/admind/internal/actions"
)

// listParams reads pagination and search out of the query string
func listParams(c *gin.Context) actions.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	return actions.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	}
}

func (r *Router) listRules(c *gin.Context) {
	data, err := r.provider.Actions.LoadRules(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createRule(c *gin.Context) {
	var payload actions.RulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateRule(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateRule(c *gin.Context) {
	var payload actions.RulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateRule(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteRule(c *gin.Context) {
	if err := r.provider.Actions.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listAchievements(c *gin.Context) {
	data, err := r.provider.Actions.LoadAchievements(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createAchievement(c *gin.Context) {
	var payload actions.AchievementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateAchievement(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateAchievement(c *gin.Context) {
	var payload actions.AchievementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateAchievement(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteAchievement(c *gin.Context) {
	if err := r.provider.Actions.DeleteAchievement(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type grantRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (r *Router) grantAchievement(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	if err := r.provider.Actions.GrantAchievement(req.UserID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listUserAchievements(c *gin.Context) {
	snap := r.provider.Snapshot()
	grants := snap.UserAchievements
	if userID := c.Query("user_id"); userID != "" {
		filtered := grants[:0:0]
		for _, g := range grants {
			if g.UserID == userID {
				filtered = append(filtered, g)
			}
		}
		grants = filtered
	}
	c.JSON(http.StatusOK, gin.H{"data": grants})
}

func (r *Router) listBadges(c *gin.Context) {
	data, err := r.provider.Actions.LoadBadges(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createBadge(c *gin.Context) {
	var payload actions.BadgePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateBadge(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateBadge(c *gin.Context) {
	var payload actions.BadgePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateBadge(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteBadge(c *gin.Context) {
	if err := r.provider.Actions.DeleteBadge(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listExams(c *gin.Context) {
	data, err := r.provider.Actions.LoadExams(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createExam(c *gin.Context) {
	var payload actions.ExamPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateExam(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateExam(c *gin.Context) {
	var payload actions.ExamPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	result, err := r.provider.Actions.UpdateExam(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (r *Router) deleteExam(c *gin.Context) {
	if err := r.provider.Actions.DeleteExam(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
