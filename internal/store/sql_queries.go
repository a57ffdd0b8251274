package store

import (
	"strings"

	"github.com/MKhiriev/go-rest-auth/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns    = `id, email, username, password, firstname, lastname, role, created_at, updated_at`
	postColumns    = `id, title, content, published, author_id, created_at, updated_at`
	profileColumns = `id, user_id, bio, city, created_at, updated_at`
	statusColumns  = `id, profile_id, content, emoji, clear_interval, created_at, updated_at`
)

const (
	createUser = `INSERT INTO users (id, email, username, password, firstname, lastname, role)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at DESC;`
)

const (
	createPost = `INSERT INTO posts (id, title, content, published, author_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + postColumns + `;`

	findPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE id = $1;`

	findPublishedPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE id = $1 AND published = TRUE;`

	listPublishedPosts = `SELECT ` + postColumns + `
    FROM posts
    WHERE published = TRUE
    ORDER BY created_at DESC;`

	deletePost = `DELETE FROM posts
    WHERE id = $1;`
)

const (
	createProfile = `INSERT INTO profiles (id, user_id, bio, city)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + profileColumns + `;`

	findProfileByID = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE id = $1;`

	findProfileByUserID = `SELECT ` + profileColumns + `
    FROM profiles
    WHERE user_id = $1;`

	findStatusByProfileID = `SELECT ` + statusColumns + `
    FROM profile_statuses
    WHERE profile_id = $1;`

	// Absent fields keep their stored value on conflict.
	upsertStatus = `INSERT INTO profile_statuses (id, profile_id, content, emoji, clear_interval)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (profile_id) DO UPDATE SET
        content = COALESCE(EXCLUDED.content, profile_statuses.content),
        emoji = COALESCE(EXCLUDED.emoji, profile_statuses.emoji),
        clear_interval = COALESCE(EXCLUDED.clear_interval, profile_statuses.clear_interval),
        updated_at = NOW()
    RETURNING ` + statusColumns + `;`

	deleteExpiredStatuses = `DELETE FROM profile_statuses
    WHERE clear_interval IS NOT NULL
      AND clear_interval > 0
      AND updated_at + make_interval(secs => clear_interval) <= $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func columnList(columns string) []string {
	return strings.Split(columns, ", ")
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildSearchUsersQuery selects users matching every non-empty filter field
// as a case-insensitive substring.
func buildSearchUsersQuery(filter models.UserFilter) (string, []any, error) {
	q := psql.Select(columnList(userColumns)...).From("users")

	if filter.Email != "" {
		q = q.Where(sq.ILike{"email": "%" + escapeLike(filter.Email) + "%"})
	}
	if filter.Firstname != "" {
		q = q.Where(sq.ILike{"firstname": "%" + escapeLike(filter.Firstname) + "%"})
	}
	if filter.Lastname != "" {
		q = q.Where(sq.ILike{"lastname": "%" + escapeLike(filter.Lastname) + "%"})
	}

	return q.OrderBy("created_at DESC").ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update and bumps updated_at.
func buildUpdateUserQuery(id string, update models.UserUpdate) (string, []any, error) {
	q := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.Email != nil {
		q = q.Set("email", *update.Email)
	}
	if update.Password != nil {
		q = q.Set("password", *update.Password)
	}
	if update.Firstname != nil {
		q = q.Set("firstname", *update.Firstname)
	}
	if update.Lastname != nil {
		q = q.Set("lastname", *update.Lastname)
	}
	if update.Role != nil {
		q = q.Set("role", string(*update.Role))
	}

	return q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + userColumns).ToSql()
}

func buildUpdatePostQuery(id string, update models.PostUpdate) (string, []any, error) {
	q := psql.Update("posts").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", *update.Content)
	}
	if update.Published != nil {
		q = q.Set("published", *update.Published)
	}

	return q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + postColumns).ToSql()
}

func buildUpdateProfileQuery(id string, fields models.ProfileFields) (string, []any, error) {
	q := psql.Update("profiles").Set("updated_at", sq.Expr("NOW()"))

	if fields.Bio != nil {
		q = q.Set("bio", *fields.Bio)
	}
	if fields.City != nil {
		q = q.Set("city", *fields.City)
	}

	return q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + profileColumns).ToSql()
}
