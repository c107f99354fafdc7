package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bookreview-server/internal/model"
)

var _ model.ReviewStore = (*ReviewRepository)(nil)

type ReviewRepository struct {
	db *Connection
}

func NewReviewRepository(db *Connection) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]model.Review, error) {
	const query = `SELECT id, title, rating FROM book_reviews ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ID, &review.Title, &review.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Review, error) {
	const query = `SELECT id, title, rating FROM book_reviews WHERE id = $1`

	var review model.Review
	err := r.db.QueryRow(ctx, query, id).Scan(&review.ID, &review.Title, &review.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Review{}, model.ErrNotFound
		}
		return model.Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}

	return review, nil
}

func (r *ReviewRepository) GetSummary(ctx context.Context) ([]model.ReviewSummary, error) {
	const query = `
        SELECT title, ROUND(AVG(rating)::numeric, 2)::float8
        FROM book_reviews GROUP BY title ORDER BY title
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get review summary: %w", err)
	}
	defer rows.Close()

	summaries := []model.ReviewSummary{}
	for rows.Next() {
		var summary model.ReviewSummary
		if err := rows.Scan(&summary.Title, &summary.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan review summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review summary: %w", err)
	}

	return summaries, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	const query = `
        INSERT INTO book_reviews (id, title, rating, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id, title, rating
    `

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	var savedReview model.Review
	err := r.db.QueryRow(ctx, query, review.ID, review.Title, review.Rating).
		Scan(&savedReview.ID, &savedReview.Title, &savedReview.Rating)
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return savedReview, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review model.Review) error {
	const query = `
        UPDATE book_reviews SET title = $2, rating = $3, updated_at = NOW()
        WHERE id = $1
    `
	ct, err := r.db.Exec(ctx, query, review.ID, review.Title, review.Rating)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM book_reviews WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
