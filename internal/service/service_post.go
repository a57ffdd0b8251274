package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/rbac"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// postService implements PostService. Mutations are allowed to the author
// and to ADMIN; anybody else gets ErrForbidden.
type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (s *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListPublishedPosts(ctx)
}

// GetPublished hides drafts: an unpublished post is reported as not found.
func (s *postService) GetPublished(ctx context.Context, id string) (models.Post, error) {
	post, err := s.postRepository.FindPublishedPostByID(ctx, id)
	if err != nil {
		return models.Post{}, translatePostStoreError(err)
	}

	return post, nil
}

func (s *postService) Create(ctx context.Context, identity models.Identity, req models.CreatePostRequest) (models.Post, error) {
	authorID := identity.UserID
	post := models.Post{
		ID:       utils.NewID(),
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: &authorID,
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.Create").Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

func (s *postService) Update(ctx context.Context, identity models.Identity, id string, req models.UpdatePostRequest) (models.Post, error) {
	if _, err := s.authorize(ctx, identity, id); err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.UpdatePost(ctx, id, models.PostUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return models.Post{}, translatePostStoreError(err)
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if _, err := s.authorize(ctx, identity, id); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, id); err != nil {
		return translatePostStoreError(err)
	}

	return nil
}

// authorize loads the post and checks that identity may modify it.
// A missing post wins over a permission failure.
func (s *postService) authorize(ctx context.Context, identity models.Identity, id string) (models.Post, error) {
	post, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, translatePostStoreError(err)
	}

	if !rbac.CanModify(identity, post.AuthorID) {
		logger.FromContext(ctx).Debug().
			Str("user_id", identity.UserID).
			Str("post_id", id).
			Msg("post modification forbidden")
		return models.Post{}, ErrForbidden
	}

	return post, nil
}

func translatePostStoreError(err error) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return err
}
