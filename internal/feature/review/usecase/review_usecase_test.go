package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	majorentity "ratemymajor_backend/internal/feature/major/domain/entity"
	majorusecase "ratemymajor_backend/internal/feature/major/usecase"
	"ratemymajor_backend/internal/feature/review/domain/entity"
	"ratemymajor_backend/internal/shared/identity"
)

// mockReviewRepository is a mock implementation of the ReviewRepository interface.
type mockReviewRepository struct {
	FindByIDFunc           func(ctx context.Context, id uint) (*entity.Review, error)
	FindByUserAndMajorFunc func(ctx context.Context, userID, majorID uint) (*entity.Review, error)
	CreateFunc             func(ctx context.Context, review *entity.Review) error
	UpdateFunc             func(ctx context.Context, review *entity.Review) error
	DeleteOwnedFunc        func(ctx context.Context, id, userID uint) error
	ListByMajorFunc        func(ctx context.Context, majorID uint) ([]entity.ReviewSummary, error)
	FindLikeFunc           func(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error)
	CreateLikeFunc         func(ctx context.Context, like *entity.ReviewLike) error
	DeleteLikeFunc         func(ctx context.Context, userID, reviewID uint) error
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrReviewNotFound
}

func (m *mockReviewRepository) FindByUserAndMajor(ctx context.Context, userID, majorID uint) (*entity.Review, error) {
	if m.FindByUserAndMajorFunc != nil {
		return m.FindByUserAndMajorFunc(ctx, userID, majorID)
	}
	return nil, ErrReviewNotFound
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockReviewRepository) ListByMajor(ctx context.Context, majorID uint) ([]entity.ReviewSummary, error) {
	if m.ListByMajorFunc != nil {
		return m.ListByMajorFunc(ctx, majorID)
	}
	return nil, nil
}

func (m *mockReviewRepository) FindLike(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error) {
	if m.FindLikeFunc != nil {
		return m.FindLikeFunc(ctx, userID, reviewID)
	}
	return nil, ErrLikeNotFound
}

func (m *mockReviewRepository) CreateLike(ctx context.Context, like *entity.ReviewLike) error {
	if m.CreateLikeFunc != nil {
		return m.CreateLikeFunc(ctx, like)
	}
	return nil
}

func (m *mockReviewRepository) DeleteLike(ctx context.Context, userID, reviewID uint) error {
	if m.DeleteLikeFunc != nil {
		return m.DeleteLikeFunc(ctx, userID, reviewID)
	}
	return nil
}

// mockMajorFinder is a mock implementation of the MajorFinder interface.
type mockMajorFinder struct {
	FindBySlugFunc func(ctx context.Context, slug string) (*majorentity.Major, error)
}

func (m *mockMajorFinder) FindBySlug(ctx context.Context, slug string) (*majorentity.Major, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, majorusecase.ErrMajorNotFound
}

// testPrincipal is the authenticated user used across the tests.
var testPrincipal = &identity.Principal{ID: 1, Email: "student@cpp.edu"}

// validCreateInput returns a CreateReviewInput that passes validation.
func validCreateInput() CreateReviewInput {
	return CreateReviewInput{
		Slug:       "computer-science",
		ReviewText: strings.Repeat("A", 60),
		Ratings:    Ratings{Major: 3, CareerReadiness: 4, Difficulty: 2, Satisfaction: 5},
	}
}

func TestReviewUsecase_CreateReview(t *testing.T) {
	major := &majorentity.Major{ID: 7, Slug: "computer-science", Name: "Computer Science"}

	t.Run("successful creation maps every field", func(t *testing.T) {
		var created *entity.Review
		repo := &mockReviewRepository{
			CreateFunc: func(ctx context.Context, review *entity.Review) error {
				created = review
				review.ID = 42
				return nil
			},
		}
		majors := &mockMajorFinder{
			FindBySlugFunc: func(ctx context.Context, slug string) (*majorentity.Major, error) {
				if slug != "computer-science" {
					t.Errorf("unexpected slug: %s", slug)
				}
				return major, nil
			},
		}

		uc := NewReviewUsecase(repo, majors)
		review, err := uc.CreateReview(context.Background(), testPrincipal, validCreateInput())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("repository Create was not called")
		}
		if review.Rating != 3 || review.CareerReadiness != 4 || review.Difficulty != 2 || review.Satisfaction != 5 {
			t.Errorf("ratings not mapped: %+v", review)
		}
		if review.Comment != strings.Repeat("A", 60) {
			t.Errorf("comment not mapped: %q", review.Comment)
		}
		if review.UserID != testPrincipal.ID || review.MajorID != major.ID {
			t.Errorf("foreign keys not mapped: user=%d major=%d", review.UserID, review.MajorID)
		}
	})

	t.Run("anonymous caller is rejected before any repository call", func(t *testing.T) {
		repoTouched := false
		repo := &mockReviewRepository{
			FindByUserAndMajorFunc: func(ctx context.Context, userID, majorID uint) (*entity.Review, error) {
				repoTouched = true
				return nil, ErrReviewNotFound
			},
			CreateFunc: func(ctx context.Context, review *entity.Review) error {
				repoTouched = true
				return nil
			},
		}
		majors := &mockMajorFinder{
			FindBySlugFunc: func(ctx context.Context, slug string) (*majorentity.Major, error) {
				repoTouched = true
				return major, nil
			},
		}

		uc := NewReviewUsecase(repo, majors)
		_, err := uc.CreateReview(context.Background(), nil, validCreateInput())

		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got: %v", err)
		}
		if repoTouched {
			t.Error("storage was touched for an anonymous caller")
		}
	})

	t.Run("validation failures cite the first violated rule", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(in *CreateReviewInput)
			message string
		}{
			{
				name:    "empty slug",
				mutate:  func(in *CreateReviewInput) { in.Slug = "" },
				message: "Major is required",
			},
			{
				name:    "short review text",
				mutate:  func(in *CreateReviewInput) { in.ReviewText = strings.Repeat("A", 59) },
				message: "Review must be at least 60 characters",
			},
			{
				name:    "rating below range",
				mutate:  func(in *CreateReviewInput) { in.Ratings.Major = 0 },
				message: "Major rating must be between 1 and 5",
			},
			{
				name:    "rating above range",
				mutate:  func(in *CreateReviewInput) { in.Ratings.Satisfaction = 6 },
				message: "Satisfaction rating must be between 1 and 5",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})

				in := validCreateInput()
				tt.mutate(&in)
				_, err := uc.CreateReview(context.Background(), testPrincipal, in)

				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got: %v", err)
				}
				if vErr.Error() != tt.message {
					t.Errorf("expected %q, got %q", tt.message, vErr.Error())
				}
			})
		}
	})

	t.Run("unknown slug fails with major not found", func(t *testing.T) {
		uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})

		_, err := uc.CreateReview(context.Background(), testPrincipal, validCreateInput())

		if !errors.Is(err, majorusecase.ErrMajorNotFound) {
			t.Errorf("expected ErrMajorNotFound, got: %v", err)
		}
	})

	t.Run("existing review for the pair fails with conflict", func(t *testing.T) {
		repo := &mockReviewRepository{
			FindByUserAndMajorFunc: func(ctx context.Context, userID, majorID uint) (*entity.Review, error) {
				return &entity.Review{ID: 9, UserID: userID, MajorID: majorID}, nil
			},
			CreateFunc: func(ctx context.Context, review *entity.Review) error {
				t.Error("Create must not be called when a review already exists")
				return nil
			},
		}
		majors := &mockMajorFinder{
			FindBySlugFunc: func(ctx context.Context, slug string) (*majorentity.Major, error) {
				return major, nil
			},
		}

		uc := NewReviewUsecase(repo, majors)
		_, err := uc.CreateReview(context.Background(), testPrincipal, validCreateInput())

		if !errors.Is(err, ErrAlreadyReviewed) {
			t.Errorf("expected ErrAlreadyReviewed, got: %v", err)
		}
	})

	t.Run("losing the uniqueness race surfaces the constraint conflict", func(t *testing.T) {
		// Both concurrent calls pass the pre-check; the storage-level
		// unique index rejects the second insert.
		repo := &mockReviewRepository{
			CreateFunc: func(ctx context.Context, review *entity.Review) error {
				return ErrAlreadyReviewed
			},
		}
		majors := &mockMajorFinder{
			FindBySlugFunc: func(ctx context.Context, slug string) (*majorentity.Major, error) {
				return major, nil
			},
		}

		uc := NewReviewUsecase(repo, majors)
		_, err := uc.CreateReview(context.Background(), testPrincipal, validCreateInput())

		if !errors.Is(err, ErrAlreadyReviewed) {
			t.Errorf("expected ErrAlreadyReviewed, got: %v", err)
		}
	})
}

func TestReviewUsecase_UpdateReview(t *testing.T) {
	validInput := UpdateReviewInput{
		ReviewID:   42,
		ReviewText: strings.Repeat("B", 60),
		Ratings:    Ratings{Major: 5, CareerReadiness: 5, Difficulty: 1, Satisfaction: 4},
	}

	stored := func() *entity.Review {
		return &entity.Review{
			ID: 42, Rating: 3, CareerReadiness: 4, Difficulty: 2, Satisfaction: 5,
			Comment: strings.Repeat("A", 60), UserID: 1, MajorID: 7,
		}
	}

	t.Run("successful update replaces ratings and comment only", func(t *testing.T) {
		var updated *entity.Review
		repo := &mockReviewRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Review, error) {
				return stored(), nil
			},
			UpdateFunc: func(ctx context.Context, review *entity.Review) error {
				updated = review
				return nil
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		review, err := uc.UpdateReview(context.Background(), testPrincipal, validInput)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatal("repository Update was not called")
		}
		if review.Rating != 5 || review.CareerReadiness != 5 || review.Difficulty != 1 || review.Satisfaction != 4 {
			t.Errorf("ratings not replaced: %+v", review)
		}
		if review.Comment != strings.Repeat("B", 60) {
			t.Errorf("comment not replaced: %q", review.Comment)
		}
		// Owner and major are never altered
		if review.UserID != 1 || review.MajorID != 7 {
			t.Errorf("owner or major changed: user=%d major=%d", review.UserID, review.MajorID)
		}
	})

	t.Run("missing review and not-owned review are distinct failures", func(t *testing.T) {
		// Absent review
		uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})
		_, err := uc.UpdateReview(context.Background(), testPrincipal, validInput)
		if !errors.Is(err, ErrReviewNotFound) {
			t.Errorf("expected ErrReviewNotFound, got: %v", err)
		}

		// Present but owned by someone else
		repo := &mockReviewRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Review, error) {
				r := stored()
				r.UserID = 2
				return r, nil
			},
			UpdateFunc: func(ctx context.Context, review *entity.Review) error {
				t.Error("Update must not be called for a not-owned review")
				return nil
			},
		}
		uc = NewReviewUsecase(repo, &mockMajorFinder{})
		_, err = uc.UpdateReview(context.Background(), testPrincipal, validInput)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got: %v", err)
		}
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})
		_, err := uc.UpdateReview(context.Background(), nil, validInput)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got: %v", err)
		}
	})

	t.Run("zero review id fails validation", func(t *testing.T) {
		uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})

		in := validInput
		in.ReviewID = 0
		_, err := uc.UpdateReview(context.Background(), testPrincipal, in)

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got: %v", err)
		}
	})
}

func TestReviewUsecase_DeleteReview(t *testing.T) {
	t.Run("delete is scoped to the owner in a single condition", func(t *testing.T) {
		var gotID, gotUserID uint
		repo := &mockReviewRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, userID uint) error {
				gotID, gotUserID = id, userID
				return nil
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		err := uc.DeleteReview(context.Background(), testPrincipal, 42)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != 42 || gotUserID != testPrincipal.ID {
			t.Errorf("delete condition wrong: id=%d user=%d", gotID, gotUserID)
		}
	})

	t.Run("non-matching delete surfaces not found, not silent success", func(t *testing.T) {
		repo := &mockReviewRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, userID uint) error {
				return ErrReviewNotFound
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		err := uc.DeleteReview(context.Background(), testPrincipal, 42)

		if !errors.Is(err, ErrReviewNotFound) {
			t.Errorf("expected ErrReviewNotFound, got: %v", err)
		}
	})

	t.Run("anonymous caller is rejected before any repository call", func(t *testing.T) {
		repo := &mockReviewRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, userID uint) error {
				t.Error("DeleteOwned must not be called for an anonymous caller")
				return nil
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		err := uc.DeleteReview(context.Background(), nil, 42)

		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got: %v", err)
		}
	})
}

func TestReviewUsecase_ToggleLike(t *testing.T) {
	t.Run("two consecutive toggles flip state twice", func(t *testing.T) {
		// In-memory like state to drive the toggle
		liked := false
		repo := &mockReviewRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Review, error) {
				return &entity.Review{ID: id}, nil
			},
			FindLikeFunc: func(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error) {
				if liked {
					return &entity.ReviewLike{UserID: userID, ReviewID: reviewID}, nil
				}
				return nil, ErrLikeNotFound
			},
			CreateLikeFunc: func(ctx context.Context, like *entity.ReviewLike) error {
				liked = true
				return nil
			},
			DeleteLikeFunc: func(ctx context.Context, userID, reviewID uint) error {
				liked = false
				return nil
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})

		first, err := uc.ToggleLike(context.Background(), testPrincipal, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.ToggleLike(context.Background(), testPrincipal, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first != true || second != false {
			t.Errorf("expected true then false, got %v then %v", first, second)
		}
	})

	t.Run("liking a vanished review fails instead of persisting an orphan", func(t *testing.T) {
		repo := &mockReviewRepository{
			CreateLikeFunc: func(ctx context.Context, like *entity.ReviewLike) error {
				t.Error("CreateLike must not be called for a missing review")
				return nil
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		_, err := uc.ToggleLike(context.Background(), testPrincipal, 42)

		if !errors.Is(err, ErrReviewNotFound) {
			t.Errorf("expected ErrReviewNotFound, got: %v", err)
		}
	})

	t.Run("losing the insert race surfaces the conflict for caller retry", func(t *testing.T) {
		repo := &mockReviewRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Review, error) {
				return &entity.Review{ID: id}, nil
			},
			FindLikeFunc: func(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error) {
				return nil, ErrLikeNotFound
			},
			CreateLikeFunc: func(ctx context.Context, like *entity.ReviewLike) error {
				return ErrLikeConflict
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		_, err := uc.ToggleLike(context.Background(), testPrincipal, 42)

		if !errors.Is(err, ErrLikeConflict) {
			t.Errorf("expected ErrLikeConflict, got: %v", err)
		}
	})

	t.Run("anonymous caller is rejected before any repository call", func(t *testing.T) {
		repo := &mockReviewRepository{
			FindLikeFunc: func(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error) {
				t.Error("FindLike must not be called for an anonymous caller")
				return nil, ErrLikeNotFound
			},
		}

		uc := NewReviewUsecase(repo, &mockMajorFinder{})
		_, err := uc.ToggleLike(context.Background(), nil, 42)

		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got: %v", err)
		}
	})
}

func TestReviewUsecase_ListByMajor(t *testing.T) {
	t.Run("resolves the slug then lists with like counts", func(t *testing.T) {
		repo := &mockReviewRepository{
			ListByMajorFunc: func(ctx context.Context, majorID uint) ([]entity.ReviewSummary, error) {
				if majorID != 7 {
					t.Errorf("unexpected major id: %d", majorID)
				}
				return []entity.ReviewSummary{{ID: 1, LikeCount: 3}}, nil
			},
		}
		majors := &mockMajorFinder{
			FindBySlugFunc: func(ctx context.Context, slug string) (*majorentity.Major, error) {
				return &majorentity.Major{ID: 7, Slug: slug}, nil
			},
		}

		uc := NewReviewUsecase(repo, majors)
		summaries, err := uc.ListByMajor(context.Background(), "computer-science")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summaries) != 1 || summaries[0].LikeCount != 3 {
			t.Errorf("unexpected summaries: %+v", summaries)
		}
	})

	t.Run("unknown slug fails with major not found", func(t *testing.T) {
		uc := NewReviewUsecase(&mockReviewRepository{}, &mockMajorFinder{})

		_, err := uc.ListByMajor(context.Background(), "nope")

		if !errors.Is(err, majorusecase.ErrMajorNotFound) {
			t.Errorf("expected ErrMajorNotFound, got: %v", err)
		}
	})
}
