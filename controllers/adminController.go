package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blightwatch-be/lifecycle"
	"blightwatch-be/listing"
	"blightwatch-be/models"
)

// Dashboard handles GET /api/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	summary, err := h.cases.Summary(c.Request.Context(), listing.Filter{})
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Reports handles GET /api/admin/reports
func (h *Handler) Reports(c *gin.Context) {
	var params struct {
		Organization string `form:"organization"`
		Area         string `form:"area"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	f := listing.Filter{Organization: params.Organization, Area: params.Area}
	summary, err := h.cases.Summary(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filter": f, "summary": summary})
}

// AdminCases handles GET /api/admin/cases
func (h *Handler) AdminCases(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	h.writePage(c, q)
}

// AdminCase handles GET /api/admin/cases/:id
func (h *Handler) AdminCase(c *gin.Context) {
	ctx := c.Request.Context()
	cs, err := h.cases.GetCase(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	reviews, err := h.cases.Reviews(ctx, cs.ID)
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	reviewers, err := h.cases.Reviewers(ctx)
	if err != nil {
		h.respondError(c, resourceReviewer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"case":      newCaseView(cs),
		"reviews":   reviews,
		"reviewers": reviewerViews(reviewers),
	})
}

// CaseReviews handles GET /api/admin/cases/:id/reviews
func (h *Handler) CaseReviews(c *gin.Context) {
	reviews, err := h.cases.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// SaveReview handles POST /api/admin/cases/:id/reviews
func (h *Handler) SaveReview(c *gin.Context) {
	var input struct {
		Status     string `json:"status" binding:"required"`
		ReviewerID string `json:"reviewer"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	outcome, err := h.cases.SaveReview(c.Request.Context(), lifecycle.ReviewRequest{
		CaseID:     c.Param("id"),
		Status:     models.CaseStatus(strings.ToLower(strings.TrimSpace(input.Status))),
		ReviewerID: input.ReviewerID,
		Comment:    input.Comment,
	})
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusCreated, outcome)
}

type reviewerView struct {
	*models.Reviewer
	Initials string `json:"initials"`
}

func reviewerViews(reviewers []*models.Reviewer) []reviewerView {
	out := make([]reviewerView, len(reviewers))
	for i, r := range reviewers {
		out[i] = reviewerView{Reviewer: r, Initials: r.Initials()}
	}
	return out
}

// Reviewers handles GET /api/admin/reviewers
func (h *Handler) Reviewers(c *gin.Context) {
	reviewers, err := h.cases.Reviewers(c.Request.Context())
	if err != nil {
		h.respondError(c, resourceReviewer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviewers": reviewerViews(reviewers)})
}

// Organizations handles GET /api/admin/organizations
func (h *Handler) Organizations(c *gin.Context) {
	orgs, err := h.directory.Organizations(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, resourceOrganization, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs, "total": len(orgs)})
}

// Users handles GET /api/admin/users
func (h *Handler) Users(c *gin.Context) {
	dir, err := h.directory.Users(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, resourceUser, err)
		return
	}
	c.JSON(http.StatusOK, dir)
}
