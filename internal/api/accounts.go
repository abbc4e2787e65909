package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobboardly/backend/internal/entities"
)

type registerCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AdminUID    string `json:"admin_uid" binding:"required"`
}

func (h handlers) registerCompany(c *gin.Context) {
	var req registerCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	company, err := h.deps.Companies.Register(c.Request.Context(), req.Name, req.Description, req.AdminUID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h handlers) listCompanies(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	companies, err := h.deps.Companies.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (h handlers) listCompanyJobs(c *gin.Context) {
	jobs, err := h.deps.Jobs.ListByCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h handlers) getCompany(c *gin.Context) {
	company, err := h.deps.Companies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

type registerUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

func (h handlers) registerUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	role, err := entities.ToUserRole(req.Role)
	if err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.deps.Users.Register(c.Request.Context(), req.Name, req.Email, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h handlers) getUser(c *gin.Context) {
	profile, err := h.deps.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h handlers) saveJob(c *gin.Context) {
	if err := h.deps.Users.SaveJob(c.Request.Context(), c.Param("id"), c.Param("jobId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h handlers) unsaveJob(c *gin.Context) {
	if err := h.deps.Users.UnsaveJob(c.Request.Context(), c.Param("id"), c.Param("jobId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h handlers) listNotifications(c *gin.Context) {
	notifications, err := h.deps.Notifications.GetByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h handlers) markNotificationRead(c *gin.Context) {
	if err := h.deps.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h handlers) recommendJobs(c *gin.Context) {
	result, err := h.deps.Recommendations.RecommendJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h handlers) recommendCandidates(c *gin.Context) {
	result, err := h.deps.Recommendations.RecommendCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
