package users

const (
	queryCreate = `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, role, created_at
	`

	queryFindByEmail = `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	queryCount = `
		SELECT COUNT(*) FROM users
	`
)
