package store

// Token queries
const (
	queryGetToken = `SELECT token FROM vts_token WHERE id = 1`

	queryUpsertToken = `
		INSERT INTO vts_token (id, token, updated_at)
		VALUES (1, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			token = EXCLUDED.token,
			updated_at = now()`

	queryDeleteToken = `DELETE FROM vts_token WHERE id = 1`
)
