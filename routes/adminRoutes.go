package routes

import (
	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the review portal. admin must already require an
// authenticated administrator.
func AdminRoutes(admin *gin.RouterGroup, d Deps) {
	h := d.Handler

	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/reports", h.Reports)
	admin.GET("/reviewers", h.Reviewers)
	admin.GET("/organizations", h.Organizations)
	admin.GET("/users", h.Users)

	cases := admin.Group("/cases")
	{
		cases.GET("", h.AdminCases)
		cases.GET("/:id", h.AdminCase)
		cases.GET("/:id/reviews", h.CaseReviews)
		cases.POST("/:id/reviews", h.SaveReview)
	}
}
