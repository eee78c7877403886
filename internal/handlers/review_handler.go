package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"dauraBack/internal/models"
	"dauraBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) GetReviewsByBusinessID(w http.ResponseWriter, r *http.Request) {
	businessIDStr := r.URL.Query().Get(":businessId")
	businessID, err := strconv.Atoi(businessIDStr)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid business id.")
		return
	}
	reviews, err := h.Service.GetReviewsByBusinessID(r.Context(), businessID)
	if err != nil {
		log.Printf("GetReviewsByBusinessID error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching reviews.")
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	// Presence check over all four fields. A rating of 0 is indistinguishable
	// from an absent rating here and is rejected the same way.
	if req.BusinessID == 0 || req.ReviewerName == "" || req.Text == "" || req.Rating == 0 {
		writeMessage(w, http.StatusBadRequest, "All review fields are required.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeMessage(w, http.StatusBadRequest, "Rating must be between 1 and 5.")
		return
	}
	id, err := h.Service.CreateReview(r.Context(), models.Review{
		BusinessID:   req.BusinessID,
		ReviewerName: req.ReviewerName,
		Text:         req.Text,
		Rating:       req.Rating,
	})
	if err != nil {
		log.Printf("CreateReview error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error adding review.")
		return
	}
	writeJSON(w, http.StatusCreated, models.CreateReviewResponse{
		Message:  "Review added successfully!",
		ReviewID: id,
	})
}
