package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	DeactivateListing(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	TransitionBooking(c *ginext.Context)
	ListListingBookings(c *ginext.Context)
	CreateReview(c *ginext.Context)
	ListListingReviews(c *ginext.Context)
}

func InitRouter(mode string, h Handler, openapiDoc []byte, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.PATCH("/listings/:id", h.UpdateListing)
		api.DELETE("/listings/:id", h.DeactivateListing)

		// Bookings
		api.POST("/listings/:id/bookings", h.CreateBooking)
		api.GET("/listings/:id/bookings", h.ListListingBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.TransitionBooking)

		// Reviews
		api.POST("/bookings/:id/reviews", h.CreateReview)
		api.GET("/listings/:id/reviews", h.ListListingReviews)

		api.GET("/docs/openapi.json", func(c *ginext.Context) {
			c.Data(http.StatusOK, "application/json", openapiDoc)
		})
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
