package router

import (
	"eduintel/internal/middleware"
	"eduintel/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRootRoutes(e *echo.Echo, handler *rest.RootHandler) {
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	recommend := api.Group("/recommend")
	recommend.POST("", handler.Recommend)
	recommend.GET("/explain", handler.Explain)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler) {
	review := api.Group("/review", middleware.AuthMiddleware(), middleware.RequireRole("counselor", "admin"))
	review.POST("", handler.SubmitReview)
}

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	api.GET("/analytics", handler.GetAnalytics)
}

func SetupStudentRoutes(api *echo.Group, handler *rest.StudentHandler) {
	api.GET("/students", handler.GetAllStudents)
	api.GET("/students/:id/recommendations", handler.GetStudentRecommendations)
}

func SetupUniversityRoutes(api *echo.Group, handler *rest.UniversityHandler) {
	api.GET("/universities", handler.GetUniversities)
}

func SetupIngestRoutes(api *echo.Group, handler *rest.IngestHandler) {
	scrape := api.Group("/scrape", middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	scrape.POST("", handler.Scrape)
	scrape.GET("/runs", handler.ListRuns)
}
