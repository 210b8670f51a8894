package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blightwatch-be/lifecycle"
	"blightwatch-be/listing"
	"blightwatch-be/middlewares"
	"blightwatch-be/models"
	"blightwatch-be/services"
)

// caseView is a case as list endpoints return it, with its badge resolved.
type caseView struct {
	*models.Case
	IssueNumber string           `json:"issueNumber"`
	Badge       *lifecycle.Badge `json:"badge"`
}

func newCaseView(c *models.Case) caseView {
	return caseView{Case: c, IssueNumber: c.IssueNumber(), Badge: lifecycle.BadgeFor(c.Status)}
}

type listParams struct {
	Status       string `form:"status"`
	Organization string `form:"organization"`
	Area         string `form:"area"`
	Search       string `form:"search"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (p listParams) filter() listing.Filter {
	return listing.Filter{
		Status:       strings.ToLower(strings.TrimSpace(p.Status)),
		Organization: p.Organization,
		Area:         p.Area,
		Query:        p.Search,
	}
}

// bindListQuery reads the shared list filters. Unknown statuses are
// rejected rather than silently matching nothing.
func bindListQuery(c *gin.Context) (listing.Query, bool) {
	var p listParams
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return listing.Query{}, false
	}
	f := p.filter()
	if f.Status != "" && f.Status != listing.All {
		if _, err := models.ParseStatus(f.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return listing.Query{}, false
		}
	}

	q := listing.NewQuery().WithFilter(f)
	if p.Limit > 0 {
		q = q.WithPageSize(p.Limit)
	}
	if p.Page > 0 {
		q = q.WithPage(p.Page)
	}
	return q, true
}

func (h *Handler) writePage(c *gin.Context, q listing.Query) {
	page, err := h.cases.ListCases(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}

	views := make([]caseView, len(page.Cases))
	for i, cs := range page.Cases {
		views[i] = newCaseView(cs)
	}
	c.JSON(http.StatusOK, gin.H{
		"cases":      views,
		"page":       page.Page,
		"pageSize":   page.PageSize,
		"total":      page.Total,
		"totalPages": page.TotalPages,
		"start":      page.Start,
		"end":        page.End,
		"filter":     q.Filter,
	})
}

// ListCases handles GET /api/cases
func (h *Handler) ListCases(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	h.writePage(c, q)
}

// CaseMarkers handles GET /api/cases/markers
func (h *Handler) CaseMarkers(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	markers, err := h.cases.Markers(c.Request.Context(), q.Filter, middlewares.CurrentSession(c))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"markers": markers})
}

// GetCase handles GET /api/cases/:id
func (h *Handler) GetCase(c *gin.Context) {
	detail, err := h.cases.Detail(c.Request.Context(), c.Param("id"), middlewares.CurrentSession(c))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ClaimCase handles POST /api/cases/:id/claim
func (h *Handler) ClaimCase(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	cs, err := h.cases.Claim(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"case":    newCaseView(cs),
		"gate":    lifecycle.Evaluate(cs.Status),
		"visited": sess.Visited,
	})
}

// SubmitReport handles POST /api/cases/:id/submit
func (h *Handler) SubmitReport(c *gin.Context) {
	var input struct {
		RevisionNotes string `json:"revisionNotes" binding:"max=2000"`
	}
	// The body is optional; an empty one decodes as io.EOF.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	sub, err := h.cases.Submit(c.Request.Context(), middlewares.CurrentSession(c), c.Param("id"), input.RevisionNotes)
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CreateCase handles POST /api/cases
func (h *Handler) CreateCase(c *gin.Context) {
	var input struct {
		Category     string   `json:"category" binding:"required"`
		Description  string   `json:"description" binding:"required,max=1000"`
		Latitude     float64  `json:"latitude"`
		Longitude    float64  `json:"longitude"`
		Images       []string `json:"images" binding:"max=10"`
		Area         string   `json:"area" binding:"max=100"`
		Organization string   `json:"organization" binding:"max=100"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	cs, err := h.cases.CreateCase(c.Request.Context(), services.NewCaseInput{
		Category:     input.Category,
		Description:  input.Description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Images:       input.Images,
		Area:         input.Area,
		Organization: input.Organization,
	})
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusCreated, newCaseView(cs))
}

// FilterOptions handles GET /api/filters
func (h *Handler) FilterOptions(c *gin.Context) {
	opts, err := h.cases.FilterOptions(c.Request.Context())
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Leaderboard handles GET /api/leaderboard
func (h *Handler) Leaderboard(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		h.respondError(c, resourceCase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"period":  period,
		"entries": h.cases.Leaderboard(period),
	})
}

// Profile handles GET /api/profile
func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.cases.Profile(c.Query("status"))
	if err != nil {
		h.respondError(c, resourceProfile, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
