package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pcshop/storefront/internal/marketing/domain"
	"github.com/pcshop/storefront/internal/marketing/usecase/command"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/pkg/logger"
)

// MarketingHandler handles HTTP requests for newsletter and contact pages
type MarketingHandler struct {
	subscribeHandler *command.SubscribeHandler
	contactHandler   *command.SubmitContactHandler
	repo             domain.MarketingRepository
}

// NewMarketingHandler creates a new marketing handler
func NewMarketingHandler(repo domain.MarketingRepository) *MarketingHandler {
	return &MarketingHandler{
		subscribeHandler: command.NewSubscribeHandler(repo),
		contactHandler:   command.NewSubmitContactHandler(repo),
		repo:             repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all marketing routes
func (h *MarketingHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/newsletter/subscribe", h.Subscribe).Methods("POST")
	router.HandleFunc("/api/contact", h.SubmitContact).Methods("POST")

	// Admin routes
	router.HandleFunc("/api/admin/contact-messages", userhttp.AdminMiddleware(h.ListContactMessages)).Methods("GET")
	router.HandleFunc("/api/admin/contact-messages/{id}/read", userhttp.AdminMiddleware(h.MarkRead)).Methods("PATCH")
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *MarketingHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if _, err := h.subscribeHandler.Handle(command.SubscribeCommand{Email: req.Email}); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid email address",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to subscribe to newsletter")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to subscribe",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Thank you for subscribing to our newsletter!",
	})
}

// SubmitContact handles POST /api/contact
func (h *MarketingHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	msg, err := h.contactHandler.Handle(command.SubmitContactCommand{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Your message has been sent. We will get back to you soon.",
		Data:    msg,
	})
}

// ListContactMessages handles GET /api/admin/contact-messages
func (h *MarketingHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit == 0 {
		limit = 20
	}

	messages, err := h.repo.FindContactMessages(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list contact messages")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list contact messages",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    messages,
	})
}

// MarkRead handles PATCH /api/admin/contact-messages/{id}/read
func (h *MarketingHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid message ID",
		})
		return
	}

	if err := h.repo.MarkContactMessageRead(uint(id)); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to mark message read")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update message",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Message marked as read",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
