package catalogRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnflow/controllers/catalog"
	validators "learnflow/validators/catalog"
)

// SetupCatalogRoutes sets up the public course browsing routes
func SetupCatalogRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing, search and rankings
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/search", validators.SearchCourses(), controllers.SearchCourses)
	courseGroup.Get("/suggest", validators.SearchCourses(), controllers.SuggestCourses)
	courseGroup.Get("/featured", validators.RankingLimit(6), controllers.GetFeaturedCourses)
	courseGroup.Get("/popular", validators.RankingLimit(6), controllers.GetPopularCourses)
	courseGroup.Get("/category/:category", validators.GetByCategory(), controllers.GetCoursesByCategory)

	// Course details and extras
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/recommendations", validators.GetCourseDetail(), controllers.GetRecommendations)
	courseGroup.Get("/:id/reviews", validators.GetCourseDetail(), controllers.GetCourseReviews)
	courseGroup.Get("/:id/statistics", validators.GetCourseDetail(), controllers.GetCourseStatistics)
}
