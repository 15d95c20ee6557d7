package store

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("not found")

// TokenStore keeps the VTube Studio authentication token. The table holds at
// most one row, so there is never more than one candidate token.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Get retrieves the stored token.
func (s *TokenStore) Get(ctx context.Context) (string, error) {
	row := s.db.QueryRowContext(ctx, queryGetToken)

	var token string
	err := row.Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Save stores the token, replacing any previous one.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, queryUpsertToken, token)
	return err
}

// Delete removes the stored token. Deleting a missing token is not an error.
func (s *TokenStore) Delete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, queryDeleteToken)
	return err
}
