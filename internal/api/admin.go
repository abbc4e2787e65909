package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobboardly/backend/internal/entities"
)

type moderateRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (h handlers) moderateJob(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := entities.ToJobStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	reason, err := h.deps.Moderation.ModerateJob(c.Request.Context(), c.Param("id"), status, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            status,
		"moderation_reason": reason,
	})
}

func (h handlers) moderateCompany(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := entities.ToCompanyStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	finalStatus, reason, err := h.deps.Moderation.ModerateCompany(c.Request.Context(), c.Param("id"), status, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            finalStatus,
		"moderation_reason": reason,
	})
}

func (h handlers) moderateUser(c *gin.Context) {
	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := entities.ToUserStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.deps.Moderation.SetUserStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
