package ingest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const upsertCredentialSQL = `
	INSERT INTO credentials (username, email, name, password)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (username) DO UPDATE SET
	    email = EXCLUDED.email,
	    name = EXCLUDED.name,
	    password = EXCLUDED.password`

// UpsertCredential creates or updates a member login. The password is
// bcrypt-hashed here; plaintext never reaches the database.
func UpsertCredential(ctx context.Context, pool *pgxpool.Pool, username, email, name, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := pool.Exec(ctx, upsertCredentialSQL, username, email, name, string(hash)); err != nil {
		return fmt.Errorf("upsert credential %s: %w", username, err)
	}
	return nil
}

// DeleteCredential removes a member login.
func DeleteCredential(ctx context.Context, pool *pgxpool.Pool, username string) error {
	tag, err := pool.Exec(ctx, "DELETE FROM credentials WHERE username = $1", username)
	if err != nil {
		return fmt.Errorf("delete credential %s: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no credential named %s", username)
	}
	return nil
}
