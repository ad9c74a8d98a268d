package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

// userColumns never includes the password column; hashes stay inside the
// database and the auth package's credential lookup.
const userColumns = `id, first_name, last_name, email, role, description, is_active, created_date, last_modified`

// Repository provides PostgreSQL backed persistence for user accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindAll returns all users, optionally filtered by a case-insensitive
// email substring. Users have no title, so email is the lookup field.
func (r *Repository) FindAll(ctx context.Context, email string) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if email != "" {
		query += ` WHERE email ILIKE '%' || $1 || '%'`
		args = append(args, email)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []User
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// FindByID fetches a user by identifier.
func (r *Repository) FindByID(ctx context.Context, id int64) (User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	record, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, shared.ErrNotFound
		}
		return User{}, err
	}
	return record, nil
}

// Create inserts a new account with a bcrypt password hash. A unique email
// violation maps to shared.ErrDuplicate.
func (r *Repository) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password, role, description, is_active, created_date, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING `+userColumns,
		req.FirstName, req.LastName, req.Email, string(hash), req.Role, description, active)
	record, err := scanUser(row)
	if err != nil {
		return User{}, mapUniqueViolation(err)
	}
	return record, nil
}

// Update overwrites only the fields present in req and bumps last_modified.
// A supplied password is re-hashed before storage.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		set("password", string(hash))
	}
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.IsActive != nil {
		set("is_active", *req.IsActive)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s, last_modified = NOW() WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args))
	record, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, shared.ErrNotFound
		}
		return User{}, mapUniqueViolation(err)
	}
	return record, nil
}

// Delete removes a user permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every user and reports how many were deleted.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shared.ErrDuplicate
	}
	return err
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.Description, &u.IsActive, &u.CreatedDate, &u.LastModified)
	return u, err
}
