package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/samber/lo"
)

type answerPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type applyRequest struct {
	ApplicantID string          `json:"applicant_id" binding:"required"`
	Answers     []answerPayload `json:"answers"`
}

func (h handlers) applyToJob(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	answers := lo.Map(req.Answers, func(a answerPayload, _ int) entities.ApplicationAnswer {
		return entities.ApplicationAnswer{Question: a.Question, Answer: a.Answer}
	})

	application, err := h.deps.Applications.Submit(c.Request.Context(), c.Param("id"), req.ApplicantID, answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h handlers) listJobApplications(c *gin.Context) {
	applications, err := h.deps.Applications.ApplicationsForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

type updateApplicationRequest struct {
	Status        string  `json:"status" binding:"required"`
	EmployerNotes *string `json:"employer_notes"`
}

func (h handlers) updateApplicationStatus(c *gin.Context) {
	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := entities.ToApplicationStatus(req.Status)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.deps.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), status, req.EmployerNotes); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h handlers) listUserApplications(c *gin.Context) {
	applications, err := h.deps.Applications.UserApplications(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
