package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, app.requestID, secureHeaders, makeResponseJSON)
	staticMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	// Businesses
	mux.Get("/api/businesses", standardMiddleware.ThenFunc(app.businessHandler.GetBusinesses))
	mux.Get("/api/businesses/:id", standardMiddleware.ThenFunc(app.businessHandler.GetBusinessByID))
	mux.Post("/api/businesses", standardMiddleware.ThenFunc(app.businessHandler.CreateBusiness))
	mux.Del("/api/businesses/:id", standardMiddleware.ThenFunc(app.businessHandler.DeleteBusiness))

	// Reviews
	mux.Get("/api/reviews/:businessId", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByBusinessID))
	mux.Post("/api/reviews", standardMiddleware.ThenFunc(app.reviewHandler.CreateReview))

	// Public and admin pages. pat treats a bare "/" as an exact match, so the
	// asset directories need their own prefix mounts.
	fileServer := http.FileServer(http.Dir("./web"))
	mux.Get("/css/", staticMiddleware.Then(fileServer))
	mux.Get("/js/", staticMiddleware.Then(fileServer))
	mux.Get("/admin.html", staticMiddleware.Then(fileServer))
	mux.Get("/", staticMiddleware.Then(fileServer))

	return mux
}
