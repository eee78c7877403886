package main

import (
	"log"

	"dauraBack/internal/config"
	"dauraBack/internal/handlers"
	"dauraBack/internal/services"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	businessHandler *handlers.BusinessHandler
	reviewHandler   *handlers.ReviewHandler
}

func initializeApp(businessRepo services.BusinessRepository, reviewRepo services.ReviewRepository, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Services
	businessService := &services.BusinessService{BusinessRepo: businessRepo}
	reviewService := &services.ReviewService{ReviewsRepo: reviewRepo}

	// Handlers
	businessHandler := &handlers.BusinessHandler{Service: businessService, AdminKey: cfg.Admin.Key}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		businessHandler: businessHandler,
		reviewHandler:   reviewHandler,
	}
}
