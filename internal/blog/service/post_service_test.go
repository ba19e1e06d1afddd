package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avasilyev/blogd/internal/blog/domain"
	blogrepo "github.com/avasilyev/blogd/internal/blog/repository"
	"github.com/avasilyev/blogd/internal/common/clock"
	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
	"github.com/avasilyev/blogd/internal/common/logger"
)

type mockPostRepo struct {
	insertFunc     func(ctx context.Context, post domain.Post) error
	findAllFunc    func(ctx context.Context) ([]domain.PostWithID, error)
	findByIDFunc   func(ctx context.Context, id string) (domain.Post, error)
	deleteByIDFunc func(ctx context.Context, id string) error
	dropFunc       func(ctx context.Context) error
}

func (m *mockPostRepo) Insert(ctx context.Context, post domain.Post) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) FindAll(ctx context.Context) ([]domain.PostWithID, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id string) (domain.Post, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Post{}, blogrepo.ErrPostNotFound
}

func (m *mockPostRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByIDFunc != nil {
		return m.deleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) Drop(ctx context.Context) error {
	if m.dropFunc != nil {
		return m.dropFunc(ctx)
	}
	return nil
}

func setupPostService(t *testing.T) (*PostService, *mockPostRepo, *clock.MockClock) {
	t.Helper()

	log, err := logger.New("", "test", "ERROR")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}

	posts := &mockPostRepo{}
	clk := clock.NewMockClock(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))

	return NewPostService(posts, clk, log), posts, clk
}

func TestPostService_ListForHome_OrdersNewestFirst(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.findAllFunc = func(ctx context.Context) ([]domain.PostWithID, error) {
		return []domain.PostWithID{
			{ID: "1", Title: "oldest", Date: "2022-01-05 08:00:00.000000000 +0000 UTC"},
			{ID: "2", Title: "newest", Date: "2024-03-01 12:00:00.000000000 +0000 UTC"},
			{ID: "3", Title: "middle", Date: "2023-11-20 09:30:00.000000000 +0000 UTC"},
		}, nil
	}

	result, err := svc.ListForHome(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	for i, title := range want {
		if result[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, result[i].Title)
		}
	}
}

func TestPostService_ListForHome_TruncatesDates(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.findAllFunc = func(ctx context.Context) ([]domain.PostWithID, error) {
		return []domain.PostWithID{
			{ID: "1", Title: "long date", Date: "2024-03-01 12:00:00.000000000 +0000 UTC"},
			{ID: "2", Title: "short date", Date: "2024-03"},
		}, nil
	}

	result, err := svc.ListForHome(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result[0].Date != "2024-03-01" {
		t.Errorf("expected truncated date 2024-03-01, got %q", result[0].Date)
	}
	if result[1].Date != "2024-03" {
		t.Errorf("expected short date kept as-is, got %q", result[1].Date)
	}
}

func TestPostService_ListForHome_StableForEqualDates(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.findAllFunc = func(ctx context.Context) ([]domain.PostWithID, error) {
		return []domain.PostWithID{
			{ID: "1", Title: "first", Date: "2024-03-01 12:00:00.000000000 +0000 UTC"},
			{ID: "2", Title: "second", Date: "2024-03-01 12:00:00.000000000 +0000 UTC"},
		}, nil
	}

	result, err := svc.ListForHome(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result[0].Title != "first" || result[1].Title != "second" {
		t.Errorf("expected stable order for equal dates, got %s then %s", result[0].Title, result[1].Title)
	}
}

func TestPostService_ListForHome_StoreError(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.findAllFunc = func(ctx context.Context) ([]domain.PostWithID, error) {
		return nil, commonerrors.ErrStoreUnavailable
	}

	_, err := svc.ListForHome(context.Background())
	if !errors.Is(err, commonerrors.ErrStoreUnavailable) {
		t.Errorf("expected store error to pass through, got %v", err)
	}
}

func TestPostService_GetByID_Success(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.findByIDFunc = func(ctx context.Context, id string) (domain.Post, error) {
		if id != "abc123" {
			t.Errorf("expected id abc123, got %s", id)
		}
		return domain.Post{
			Title:  "hello",
			Body:   "world",
			Author: "alice",
			Date:   "2024-06-15 10:30:00.000000000 +0000 UTC",
		}, nil
	}

	post, err := svc.GetByID(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if post.Date != "2024-06-15" {
		t.Errorf("expected truncated date, got %q", post.Date)
	}
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := setupPostService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, commonerrors.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Create_StampsDate(t *testing.T) {
	svc, posts, clk := setupPostService(t)

	var inserted domain.Post
	posts.insertFunc = func(ctx context.Context, post domain.Post) error {
		inserted = post
		return nil
	}

	err := svc.Create(context.Background(), "title", "body", "alice")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if inserted.Title != "title" || inserted.Body != "body" || inserted.Author != "alice" {
		t.Errorf("unexpected inserted post: %+v", inserted)
	}
	if inserted.Date != clk.Now().String() {
		t.Errorf("expected date %q, got %q", clk.Now().String(), inserted.Date)
	}
}

func TestPostService_Create_StoreError(t *testing.T) {
	svc, posts, _ := setupPostService(t)

	posts.insertFunc = func(ctx context.Context, post domain.Post) error {
		return commonerrors.ErrStoreUnavailable
	}

	err := svc.Create(context.Background(), "title", "body", "alice")
	if !errors.Is(err, commonerrors.ErrStoreUnavailable) {
		t.Errorf("expected store error to pass through, got %v", err)
	}
}
