package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// Review provides book review operations on top of the review store.
type Review struct {
	reviewStore model.ReviewStore
	logger      *logger.Logger
}

func NewReview(reviewStore model.ReviewStore, logger *logger.Logger) *Review {
	return &Review{
		reviewStore: reviewStore,
		logger:      logger,
	}
}

func validateReview(params model.CreateReviewParams) error {
	if strings.TrimSpace(params.Title) == "" || params.Rating < 1 || params.Rating > 5 {
		return model.ErrInvalidReview
	}
	return nil
}

func (s *Review) GetReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}

func (s *Review) GetReview(ctx context.Context, id uuid.UUID) (model.Review, error) {
	review, err := s.reviewStore.GetByID(ctx, id)
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}

	return review, nil
}

// GetSummary returns the average rating per title, rounded to two decimals.
func (s *Review) GetSummary(ctx context.Context) ([]model.ReviewSummary, error) {
	summaries, err := s.reviewStore.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get review summary: %w", err)
	}

	return summaries, nil
}

func (s *Review) CreateReview(ctx context.Context, params model.CreateReviewParams) (model.Review, error) {
	if err := validateReview(params); err != nil {
		return model.Review{}, err
	}

	review := model.Review{
		ID:     uuid.New(),
		Title:  params.Title,
		Rating: params.Rating,
	}

	review, err := s.reviewStore.Create(ctx, review)
	if err != nil {
		s.logger.Error("Review service: failed to create review", "error", err.Error())
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *Review) UpdateReview(ctx context.Context, id uuid.UUID, params model.CreateReviewParams) error {
	if err := validateReview(params); err != nil {
		return err
	}

	review := model.Review{
		ID:     id,
		Title:  params.Title,
		Rating: params.Rating,
	}

	if err := s.reviewStore.Update(ctx, review); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (s *Review) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
