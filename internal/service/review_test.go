package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookreview-server/internal/mocks"
	"github.com/dtroode/bookreview-server/internal/model"
	"github.com/dtroode/bookreview-server/internal/service"
	"github.com/dtroode/bookreview-server/internal/testutil"
)

func TestReview_CreateReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid review gets an id", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		created := model.Review{ID: uuid.New(), Title: "Dune", Rating: 4.5}
		reviewStore.On("Create", ctx, mock.MatchedBy(func(r model.Review) bool {
			return r.ID != uuid.Nil && r.Title == "Dune" && r.Rating == 4.5
		})).Return(created, nil)

		review, err := svc.CreateReview(ctx, model.CreateReviewParams{Title: "Dune", Rating: 4.5})
		require.NoError(t, err)
		assert.Equal(t, created, review)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			params  model.CreateReviewParams
			wantErr bool
		}{
			{name: "blank title", params: model.CreateReviewParams{Title: "", Rating: 3}, wantErr: true},
			{name: "whitespace-only title", params: model.CreateReviewParams{Title: "   \t", Rating: 3}, wantErr: true},
			{name: "rating below one", params: model.CreateReviewParams{Title: "Dune", Rating: 0.5}, wantErr: true},
			{name: "rating above five", params: model.CreateReviewParams{Title: "Dune", Rating: 5.5}, wantErr: true},
			{name: "rating at lower bound", params: model.CreateReviewParams{Title: "Dune", Rating: 1}},
			{name: "rating at upper bound", params: model.CreateReviewParams{Title: "Dune", Rating: 5}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				reviewStore := mocks.NewReviewStore(t)
				svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

				if !tt.wantErr {
					reviewStore.On("Create", ctx, mock.AnythingOfType("model.Review")).
						Return(model.Review{ID: uuid.New(), Title: tt.params.Title, Rating: tt.params.Rating}, nil)
				}

				_, err := svc.CreateReview(ctx, tt.params)
				if tt.wantErr {
					assert.ErrorIs(t, err, model.ErrInvalidReview)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestReview_UpdateReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		reviewStore.On("Update", ctx, model.Review{ID: id, Title: "Dune", Rating: 2}).Return(nil)

		err := svc.UpdateReview(ctx, id, model.CreateReviewParams{Title: "Dune", Rating: 2})
		require.NoError(t, err)
	})

	t.Run("invalid params rejected before store", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		err := svc.UpdateReview(ctx, id, model.CreateReviewParams{Title: "", Rating: 2})
		assert.ErrorIs(t, err, model.ErrInvalidReview)

		err = svc.UpdateReview(ctx, id, model.CreateReviewParams{Title: "   ", Rating: 2})
		assert.ErrorIs(t, err, model.ErrInvalidReview)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		reviewStore.On("Update", ctx, mock.AnythingOfType("model.Review")).Return(model.ErrNotFound)

		err := svc.UpdateReview(ctx, id, model.CreateReviewParams{Title: "Dune", Rating: 2})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestReview_Getters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("get reviews", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		stored := []model.Review{
			{ID: uuid.New(), Title: "Dune", Rating: 4},
			{ID: uuid.New(), Title: "Hyperion", Rating: 5},
		}
		reviewStore.On("GetAll", ctx).Return(stored, nil)

		reviews, err := svc.GetReviews(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, reviews)
	})

	t.Run("get review by id", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		id := uuid.New()
		reviewStore.On("GetByID", ctx, id).Return(model.Review{ID: id, Title: "Dune", Rating: 4}, nil)

		review, err := svc.GetReview(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Dune", review.Title)
	})

	t.Run("get review not found", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		id := uuid.New()
		reviewStore.On("GetByID", ctx, id).Return(model.Review{}, model.ErrNotFound)

		_, err := svc.GetReview(ctx, id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("get summary", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		stored := []model.ReviewSummary{
			{Title: "Dune", Rating: 4.33},
			{Title: "Hyperion", Rating: 5},
		}
		reviewStore.On("GetSummary", ctx).Return(stored, nil)

		summaries, err := svc.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, summaries)
	})
}

func TestReview_DeleteReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		reviewStore.On("Delete", ctx, id).Return(nil)

		err := svc.DeleteReview(ctx, id)
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		reviewStore := mocks.NewReviewStore(t)
		svc := service.NewReview(reviewStore, testutil.MakeNoopLogger())

		reviewStore.On("Delete", ctx, id).Return(model.ErrNotFound)

		err := svc.DeleteReview(ctx, id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
