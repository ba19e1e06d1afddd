package service

import (
	"context"
	"errors"
	"sort"

	"github.com/avasilyev/blogd/internal/blog/domain"
	blogrepo "github.com/avasilyev/blogd/internal/blog/repository"
	"github.com/avasilyev/blogd/internal/common/clock"
	"github.com/avasilyev/blogd/internal/common/constants"
	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
	"github.com/avasilyev/blogd/internal/common/logger"
	"github.com/avasilyev/blogd/internal/observability/metrics"
)

type PostService struct {
	posts blogrepo.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewPostService(posts blogrepo.Repository, clk clock.Clock, log *logger.Logger) *PostService {
	return &PostService{
		posts: posts,
		clock: clk,
		log:   log,
	}
}

// ListForHome returns every post ordered for the index page: raw date
// strings compared lexically, newest first, with dates truncated to the
// display width.
func (s *PostService) ListForHome(ctx context.Context) ([]domain.PostWithID, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	for i := range posts {
		posts[i].Date = displayDate(posts[i].Date)
	}

	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogrepo.ErrPostNotFound) {
			return domain.Post{}, commonerrors.ErrPostNotFound
		}
		return domain.Post{}, err
	}

	post.Date = displayDate(post.Date)
	return post, nil
}

// Create stamps the post with the server's local wall-clock time rendered
// as a string and appends it. Posts are immutable once stored.
func (s *PostService) Create(ctx context.Context, title, body, author string) error {
	post := domain.Post{
		Title:  title,
		Body:   body,
		Author: author,
		Date:   s.clock.Now().String(),
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"author": author,
			"action": "post_create_failed",
		}).Errorf("post create failed: %v", err)
		return err
	}

	s.log.WithFields(ctx, logger.Fields{
		"author": author,
		"action": "post_created",
	}).Info("post created")
	metrics.PostsCreatedTotal.Inc()

	return nil
}

func displayDate(date string) string {
	if len(date) <= constants.DateDisplayWidth {
		return date
	}
	return date[:constants.DateDisplayWidth]
}
