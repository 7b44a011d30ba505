package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	p "devnetwork-backend/internal/domains/profile"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) p.Repository {
	return &postgresRepository{pool: pool}
}

const profileColumns = `
    p.id, p.user_id, u.name, u.avatar,
    p.company, p.website, p.location, p.bio, p.status, p.githubusername,
    p.skills, p.social, p.experience, p.education,
    p.created_at, p.updated_at
`

// scanProfile reads one joined row. The jsonb columns come back as raw
// bytes and are unmarshalled here.
func scanProfile(row pgx.Row) (*p.Profile, error) {
	var prof p.Profile
	var skills, social, experience, education []byte

	err := row.Scan(
		&prof.ID, &prof.User.ID, &prof.User.Name, &prof.User.Avatar,
		&prof.Company, &prof.Website, &prof.Location, &prof.Bio, &prof.Status, &prof.GithubUsername,
		&skills, &social, &experience, &education,
		&prof.CreatedAt, &prof.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &prof.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(social, &prof.Social); err != nil {
		return nil, fmt.Errorf("unmarshal social: %w", err)
	}
	if err := json.Unmarshal(experience, &prof.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &prof.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}

	if prof.Skills == nil {
		prof.Skills = []string{}
	}
	if prof.Experience == nil {
		prof.Experience = []p.Experience{}
	}
	if prof.Education == nil {
		prof.Education = []p.Education{}
	}

	return &prof, nil
}

func marshalDoc(prof *p.Profile) (skills, social, experience, education []byte, err error) {
	if skills, err = json.Marshal(prof.Skills); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal skills: %w", err)
	}
	if social, err = json.Marshal(prof.Social); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal social: %w", err)
	}
	if experience, err = json.Marshal(prof.Experience); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal experience: %w", err)
	}
	if education, err = json.Marshal(prof.Education); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal education: %w", err)
	}
	return skills, social, experience, education, nil
}

// FindByUserID retrieves the profile owned by a user, joined with the
// identity's name and avatar
func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*p.Profile, error) {
	query := `
    SELECT ` + profileColumns + `
    FROM profiles p
    JOIN users u ON u.id = p.user_id
    WHERE p.user_id = $1
  `

	prof, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile by user id: %w", err)
	}

	return prof, nil
}

// FindAll retrieves every profile with its identity projection
func (r *postgresRepository) FindAll(ctx context.Context) ([]*p.Profile, error) {
	query := `
    SELECT ` + profileColumns + `
    FROM profiles p
    JOIN users u ON u.id = p.user_id
    ORDER BY p.created_at DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*p.Profile, 0)
	for rows.Next() {
		prof, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, prof)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, nil
}

// Create inserts a new profile document
func (r *postgresRepository) Create(ctx context.Context, prof *p.Profile) error {
	skills, social, experience, education, err := marshalDoc(prof)
	if err != nil {
		return err
	}

	query := `
    INSERT INTO profiles
    (id, user_id, company, website, location, bio, status, githubusername,
     skills, social, experience, education, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
    RETURNING created_at, updated_at
  `

	err = r.pool.QueryRow(ctx, query,
		prof.ID, prof.User.ID, prof.Company, prof.Website, prof.Location,
		prof.Bio, prof.Status, prof.GithubUsername,
		skills, social, experience, education,
	).Scan(&prof.CreatedAt, &prof.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

// Update persists the full document for the owning user
func (r *postgresRepository) Update(ctx context.Context, prof *p.Profile) error {
	skills, social, experience, education, err := marshalDoc(prof)
	if err != nil {
		return err
	}

	query := `
    UPDATE profiles
    SET company = $2, website = $3, location = $4, bio = $5, status = $6,
        githubusername = $7, skills = $8, social = $9, experience = $10,
        education = $11, updated_at = NOW()
    WHERE user_id = $1
    RETURNING updated_at
  `

	err = r.pool.QueryRow(ctx, query,
		prof.User.ID, prof.Company, prof.Website, prof.Location, prof.Bio,
		prof.Status, prof.GithubUsername,
		skills, social, experience, education,
	).Scan(&prof.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p.ErrProfileNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}

// DeleteByUserID removes the user's profile; absent profiles are tolerated
func (r *postgresRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
