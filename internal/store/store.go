package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db    *sql.DB
	token *TokenStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		token: NewTokenStore(db),
	}
}

func (s *Store) Token() *TokenStore {
	return s.token
}

func (s *Store) Close() error {
	return s.db.Close()
}
