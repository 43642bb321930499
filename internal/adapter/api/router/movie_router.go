package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

func SetupMovieRouter(e *echo.Echo, movieHandler *handler.MovieHandler, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	movies := e.Group("/v1/movies")

	// Public catalog reads
	movies.GET("/home", movieHandler.Home)
	movies.GET("/trending", movieHandler.Trending)
	movies.GET("/upcoming", movieHandler.Upcoming)
	movies.GET("/popular", movieHandler.Popular)
	movies.GET("/backdrop", movieHandler.Backdrop)

	// Detail is public, but an attached session that identifies itself sees
	// its own vote tallies layered over the provider reviews.
	movies.GET("/:id", movieHandler.Detail, authMiddleware.OptionalAuthenticate)

	// Session-local review votes
	votes := movies.Group("/:id/reviews/:index")
	votes.Use(authMiddleware.Authenticate)
	votes.POST("/upvote", movieHandler.UpvoteReview, rateLimit.Limit("vote"))
	votes.POST("/downvote", movieHandler.DownvoteReview, rateLimit.Limit("vote"))

	people := e.Group("/v1/people")
	people.GET("/:id", movieHandler.Person)
	people.GET("/:id/credits", movieHandler.PersonCredits)
}
