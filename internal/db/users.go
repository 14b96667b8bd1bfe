package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// userColumns is the column list scanned by scanUser. Optional text columns
// are coalesced so they scan into plain strings.
const userColumns = `id, name, email, COALESCE(password_hash, ''), password_set,
	role, COALESCE(course, ''), COALESCE(graduation_year, 0),
	COALESCE(current_position, ''), COALESCE(company, ''),
	skills, interests,
	COALESCE(location, ''), COALESCE(city, ''), COALESCE(country, ''),
	latitude, longitude,
	COALESCE(bio, ''), COALESCE(phone, ''), COALESCE(linkedin, ''),
	COALESCE(github, ''), COALESCE(avatar_url, ''), is_featured,
	achievements, profile_embedding, created_at, updated_at`

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PasswordSet,
		&u.Role, &u.Course, &u.GraduationYear,
		&u.CurrentPosition, &u.Company,
		&u.Skills, &u.Interests,
		&u.Location, &u.City, &u.Country,
		&u.Latitude, &u.Longitude,
		&u.Bio, &u.Phone, &u.LinkedIn,
		&u.GitHub, &u.AvatarURL, &u.IsFeatured,
		&u.Achievements, &u.ProfileEmbedding, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser creates a new user account and returns its ID
func (db *DB) CreateUser(ctx context.Context, name, email, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, role)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID; returns nil if not found
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email; returns nil if not found
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// CheckEmailExists reports whether an email is already registered
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword sets a user's password hash
func (db *DB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, password_set = TRUE, updated_at = NOW() WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateProfile updates a user's profile fields (never touches password or
// the cached embedding). The cached embedding is cleared because the profile
// text it was derived from may have changed.
func (db *DB) UpdateProfile(ctx context.Context, u *User) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET
			name = $1, course = $2, graduation_year = NULLIF($3, 0),
			current_position = $4, company = $5, skills = $6, interests = $7,
			location = $8, city = $9, country = $10, latitude = $11, longitude = $12,
			bio = $13, phone = $14, linkedin = $15, github = $16,
			profile_embedding = NULL, updated_at = NOW()
		 WHERE id = $17`,
		u.Name, u.Course, u.GraduationYear,
		u.CurrentPosition, u.Company, u.Skills, u.Interests,
		u.Location, u.City, u.Country, u.Latitude, u.Longitude,
		u.Bio, u.Phone, u.LinkedIn, u.GitHub,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// DeleteUser deletes a user account
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

// ListUsers retrieves all users, newest first
func (db *DB) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListUsersByRole retrieves users with the given role, oldest first so that
// candidate ordering is stable across requests.
func (db *DB) ListUsersByRole(ctx context.Context, role string) ([]User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at ASC`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// ListFeaturedAlumni retrieves alumni flagged for the spotlight carousel
func (db *DB) ListFeaturedAlumni(ctx context.Context) ([]User, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role = $1 AND is_featured = TRUE
		 ORDER BY created_at ASC`, RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured alumni: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, nil
}

// ListAlumniLocations retrieves map pins for alumni with known coordinates
func (db *DB) ListAlumniLocations(ctx context.Context) ([]AlumniLocation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(current_position, ''), COALESCE(company, ''),
			COALESCE(location, ''), COALESCE(city, ''), COALESCE(country, ''),
			latitude, longitude, COALESCE(avatar_url, '')
		 FROM users
		 WHERE role = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL
		 ORDER BY name ASC`, RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("failed to list alumni locations: %w", err)
	}
	defer rows.Close()

	var locations []AlumniLocation
	for rows.Next() {
		var loc AlumniLocation
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.CurrentPosition, &loc.Company,
			&loc.Location, &loc.City, &loc.Country,
			&loc.Latitude, &loc.Longitude, &loc.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alumni location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// SaveProfileEmbedding persists the cached embedding for a profile.
// This is the only mutation the recommendation engine performs; concurrent
// writers may race but the value is idempotent for unchanged profile text.
func (db *DB) SaveProfileEmbedding(ctx context.Context, userID uuid.UUID, vector []float64) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET profile_embedding = $1 WHERE id = $2`,
		Vector(vector), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile embedding: %w", err)
	}
	return nil
}

// UpsertSeedUser inserts a seed profile, updating it if the email already
// exists. Used by the seed command only.
func (db *DB) UpsertSeedUser(ctx context.Context, u *User) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (
			name, email, password_hash, password_set, role, course,
			graduation_year, current_position, company, skills, interests,
			location, city, country, latitude, longitude, bio, linkedin,
			github, avatar_url, is_featured, achievements
		 ) VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,0),$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		 ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role, course = EXCLUDED.course,
			graduation_year = EXCLUDED.graduation_year,
			current_position = EXCLUDED.current_position, company = EXCLUDED.company,
			skills = EXCLUDED.skills, interests = EXCLUDED.interests,
			location = EXCLUDED.location, city = EXCLUDED.city,
			country = EXCLUDED.country, latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude, bio = EXCLUDED.bio,
			linkedin = EXCLUDED.linkedin, github = EXCLUDED.github,
			avatar_url = EXCLUDED.avatar_url, is_featured = EXCLUDED.is_featured,
			achievements = EXCLUDED.achievements, updated_at = NOW()
		 RETURNING id`,
		u.Name, u.Email, u.PasswordHash, u.PasswordSet, u.Role, u.Course,
		u.GraduationYear, u.CurrentPosition, u.Company, u.Skills, u.Interests,
		u.Location, u.City, u.Country, u.Latitude, u.Longitude, u.Bio, u.LinkedIn,
		u.GitHub, u.AvatarURL, u.IsFeatured, u.Achievements,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert seed user: %w", err)
	}
	return id, nil
}
