package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/bookreview-server/internal/api/http/response"
	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// ReviewService defines book review operations.
type ReviewService interface {
	GetReviews(ctx context.Context) ([]model.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (model.Review, error)
	GetSummary(ctx context.Context) ([]model.ReviewSummary, error)
	CreateReview(ctx context.Context, params model.CreateReviewParams) (model.Review, error)
	UpdateReview(ctx context.Context, id uuid.UUID, params model.CreateReviewParams) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// Review handles HTTP endpoints for book reviews. All routes run behind
// the auth middleware.
type Review struct {
	reviewService ReviewService
	logger        *logger.Logger
}

// NewReview creates a new Review handler.
func NewReview(reviewService ReviewService, logger *logger.Logger) *Review {
	return &Review{
		reviewService: reviewService,
		logger:        logger,
	}
}

type reviewRequest struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

type reviewResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Rating float64   `json:"rating"`
}

type summaryResponse struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

// List returns all reviews.
func (h *Review) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetReviews(r.Context())
	if err != nil {
		h.logger.Error("Review handler: list failed", "error", err.Error())
		h.handleError(w, err)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewResponse{ID: review.ID, Title: review.Title, Rating: review.Rating})
	}

	response.JSON(w, http.StatusOK, out)
}

// Get returns a single review by id.
func (h *Review) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "not found")
		return
	}

	review, err := h.reviewService.GetReview(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, reviewResponse{ID: review.ID, Title: review.Title, Rating: review.Rating})
}

// Summary returns the average rating per title.
func (h *Review) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reviewService.GetSummary(r.Context())
	if err != nil {
		h.logger.Error("Review handler: summary failed", "error", err.Error())
		h.handleError(w, err)
		return
	}

	out := make([]summaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, summaryResponse{Title: summary.Title, Rating: summary.Rating})
	}

	response.JSON(w, http.StatusOK, out)
}

// Create stores a new review and returns its id.
func (h *Review) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), model.CreateReviewParams{
		Title:  req.Title,
		Rating: req.Rating,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("Review handler: review created", "review_id", review.ID)

	response.JSON(w, http.StatusCreated, reviewResponse{ID: review.ID, Title: review.Title, Rating: review.Rating})
}

// Update replaces the title and rating of an existing review.
func (h *Review) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "not found")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.reviewService.UpdateReview(r.Context(), id, model.CreateReviewParams{
		Title:  req.Title,
		Rating: req.Rating,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete removes a review.
func (h *Review) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
