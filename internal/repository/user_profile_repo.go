package repository

import (
	"context"

	"github.com/wizqo2024/wizqo-sub000/internal/models"
)

type UpsertUserProfileInput struct {
	UserID    string
	Email     string
	Username  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Upsert mirrors the identity record pushed by the auth provider on signup
// and profile updates. The provider owns the data; this row is a read copy.
func (r *UserProfileRepository) Upsert(
	ctx context.Context,
	input UpsertUserProfileInput,
) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (user_id, email, username, first_name, last_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email,
		    username = EXCLUDED.username,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = now()
		RETURNING id, user_id, email, username, first_name, last_name, avatar_url, created_at, updated_at
	`

	var profile models.UserProfile
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.Email,
		input.Username,
		input.FirstName,
		input.LastName,
		input.AvatarURL,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Email,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, email, username, first_name, last_name, avatar_url, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Email,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
