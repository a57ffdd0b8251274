package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	return post, err
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return r.findOne(ctx, "*postRepository.CreatePost", createPost, post.ID, post.Title, post.Content, post.Published, post.AuthorID)
}

func (r *postRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	return r.findOne(ctx, "*postRepository.FindPostByID", findPostByID, id)
}

func (r *postRepository) FindPublishedPostByID(ctx context.Context, id string) (models.Post, error) {
	return r.findOne(ctx, "*postRepository.FindPublishedPostByID", findPublishedPostByID, id)
}

func (r *postRepository) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error) {
	if update.IsEmpty() {
		return r.FindPostByID(ctx, id)
	}

	query, args, err := buildUpdatePostQuery(id, update)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*postRepository.UpdatePost", query, args...)
}

// DeletePost removes the post. A missing post yields [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return r.db.unexpected(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.unexpected(err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// ListPublishedPosts returns published posts, newest first.
func (r *postRepository) ListPublishedPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPublishedPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublishedPosts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.unexpected(err))
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.unexpected(err))
	}

	return posts, nil
}

func (r *postRepository) findOne(ctx context.Context, fn, query string, args ...any) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.Post{}, r.db.unexpected(err)
	}

	post, err := scanPost(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}
