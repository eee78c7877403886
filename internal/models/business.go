package models

import (
	"time"
)

type Business struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Hours       *string   `json:"hours,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateBusinessResponse struct {
	Message    string `json:"message"`
	BusinessID int    `json:"businessId"`
}

type DeleteBusinessRequest struct {
	AdminKey string `json:"adminKey"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
