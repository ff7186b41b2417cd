package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingohub/admind/internal/actions"
)

func (r *Router) listSubscriptions(c *gin.Context) {
	data, err := r.provider.Actions.LoadSubscriptions(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createSubscription(c *gin.Context) {
	var payload actions.SubscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateSubscription(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateSubscription(c *gin.Context) {
	var payload actions.SubscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateSubscription(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteSubscription(c *gin.Context) {
	if err := r.provider.Actions.DeleteSubscription(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listUserSubscriptions(c *gin.Context) {
	data, err := r.provider.Actions.LoadUserSubscriptions(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createUserSubscription(c *gin.Context) {
	var payload actions.UserSubscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateUserSubscription(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateUserSubscription(c *gin.Context) {
	var payload actions.UserSubscriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateUserSubscription(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) listPayments(c *gin.Context) {
	data, err := r.provider.Actions.LoadPayments(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createPayment(c *gin.Context) {
	var payload actions.PaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreatePayment(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updatePayment(c *gin.Context) {
	var payload actions.PaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdatePayment(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) listRefunds(c *gin.Context) {
	data, err := r.provider.Actions.LoadRefunds(c.Request.Context(), listParams(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (r *Router) createRefund(c *gin.Context) {
	var payload actions.RefundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	created, err := r.provider.Actions.CreateRefund(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateRefund(c *gin.Context) {
	var payload actions.RefundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewError(http.StatusBadRequest, err.Error()))
		return
	}
	updated, err := r.provider.Actions.UpdateRefund(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
