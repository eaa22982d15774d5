package repository

import (
    "context"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// UserRepo provides access to back-office staff accounts.
type UserRepo struct {
    db DBTX
}

// NewUserRepo returns a repo bound to the given database or
// transaction.
func NewUserRepo(db DBTX) *UserRepo { return &UserRepo{db: db} }

// GetByEmail returns the active user with the given email or
// sql.ErrNoRows.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    const query = `SELECT id, email, password_hash, role, is_active, created_at, updated_at
                   FROM users WHERE email = ? AND is_active = TRUE`
    var u model.User
    err := r.db.QueryRowContext(ctx, query, email).Scan(
        &u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &u, nil
}

// EmailExists reports whether any account already uses the email.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
    var count int
    err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER(?)`, email).Scan(&count)
    return count > 0, err
}

// Create inserts a staff account and populates the generated ID.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
    const query = `INSERT INTO users (email, password_hash, role, is_active) VALUES (?, ?, ?, TRUE)`
    res, err := r.db.ExecContext(ctx, query, u.Email, u.PasswordHash, u.Role)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    u.ID = uint64(id)
    return nil
}
