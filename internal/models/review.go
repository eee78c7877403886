package models

import (
	"time"
)

type Review struct {
	ID           int       `json:"id"`
	BusinessID   int       `json:"business_id"`
	ReviewerName string    `json:"reviewer_name"`
	Text         string    `json:"text"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	BusinessID   int    `json:"businessId"`
	ReviewerName string `json:"reviewerName"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
}

type CreateReviewResponse struct {
	Message  string `json:"message"`
	ReviewID int    `json:"reviewId"`
}
