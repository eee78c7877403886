package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"dauraBack/internal/models"
	"dauraBack/internal/services"
)

type BusinessHandler struct {
	Service *services.BusinessService
	// AdminKey is the process-wide shared secret gating deletion. It is only
	// ever compared here, never sent to a client.
	AdminKey string
}

func (h *BusinessHandler) GetBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.Service.GetBusinesses(r.Context())
	if err != nil {
		log.Printf("GetBusinesses error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching businesses.")
		return
	}
	json.NewEncoder(w).Encode(businesses)
}

func (h *BusinessHandler) GetBusinessByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid business id.")
		return
	}
	business, err := h.Service.GetBusinessByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBusinessNotFound) {
			writeMessage(w, http.StatusNotFound, "Business not found.")
			return
		}
		log.Printf("GetBusinessByID error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching business.")
		return
	}
	json.NewEncoder(w).Encode(business)
}

func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var business models.Business
	if err := json.NewDecoder(r.Body).Decode(&business); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if business.Name == "" || business.Category == "" || business.Location == "" || business.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Required business fields are missing.")
		return
	}
	id, err := h.Service.CreateBusiness(r.Context(), business)
	if err != nil {
		log.Printf("CreateBusiness error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error adding business on the server.")
		return
	}
	writeJSON(w, http.StatusCreated, models.CreateBusinessResponse{
		Message:    "Business added successfully and is now live!",
		BusinessID: id,
	})
}

func (h *BusinessHandler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid business id.")
		return
	}
	// A missing body means a missing key, which fails the comparison below.
	var req models.DeleteBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(h.AdminKey)) != 1 {
		log.Printf("unauthorized delete attempt for business %d", id)
		writeMessage(w, http.StatusForbidden, "Unauthorized: Invalid admin key for deletion.")
		return
	}
	if err := h.Service.DeleteBusiness(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrBusinessNotFound) {
			writeMessage(w, http.StatusNotFound, "Business not found.")
			return
		}
		log.Printf("DeleteBusiness error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error deleting business.")
		return
	}
	writeMessage(w, http.StatusOK, "Business deleted successfully!")
}
