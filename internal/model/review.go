package model

import (
	"context"

	"github.com/google/uuid"
)

// ReviewStore defines persistence operations for book reviews.
type ReviewStore interface {
	GetAll(ctx context.Context) ([]Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (Review, error)
	GetSummary(ctx context.Context) ([]ReviewSummary, error)
	Create(ctx context.Context, review Review) (Review, error)
	Update(ctx context.Context, review Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Review represents a stored book review.
type Review struct {
	ID     uuid.UUID
	Title  string
	Rating float64
}

// ReviewSummary is the average rating across all reviews of one title.
type ReviewSummary struct {
	Title  string
	Rating float64
}

// CreateReviewParams carries the caller-supplied review fields.
type CreateReviewParams struct {
	Title  string
	Rating float64
}
