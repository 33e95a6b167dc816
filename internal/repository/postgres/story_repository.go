package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
	"github.com/map-memoir/backend/internal/pkg/errors"
)

type storyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStoryRepository(db *DB) repository.StoryRepository {
	return &storyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *storyRepository) Create(ctx context.Context, story *domain.Story) error {
	query := `
		INSERT INTO stories (
			id, title, story, summary, locations, timeline,
			voice_transcript, theme, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	locationsJSON, err := json.Marshal(story.Locations)
	if err != nil {
		return errors.ErrDatabaseError
	}
	timelineJSON, err := json.Marshal(story.Timeline)
	if err != nil {
		return errors.ErrDatabaseError
	}

	_, err = r.db.ExecContext(ctx, query,
		story.ID, story.Title, story.Story, story.Summary,
		locationsJSON, timelineJSON,
		story.VoiceTranscript, story.Theme,
		story.CreatedAt, story.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create story", zap.String("id", story.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	query := `
		SELECT id, title, story, summary, locations, timeline,
			voice_transcript, theme, created_at, updated_at
		FROM stories
		WHERE id = $1
	`

	var story domain.Story
	var locationsJSON, timelineJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&story.ID, &story.Title, &story.Story, &story.Summary,
		&locationsJSON, &timelineJSON,
		&story.VoiceTranscript, &story.Theme,
		&story.CreatedAt, &story.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.ErrStoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get story by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := unmarshalStrings(locationsJSON, &story.Locations); err != nil {
		r.logger.Warn("Failed to unmarshal locations", zap.String("id", id), zap.Error(err))
	}
	if err := unmarshalStrings(timelineJSON, &story.Timeline); err != nil {
		r.logger.Warn("Failed to unmarshal timeline", zap.String("id", id), zap.Error(err))
	}

	return &story, nil
}

func (r *storyRepository) List(ctx context.Context, limit, offset int) ([]domain.Story, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stories`).Scan(&total); err != nil {
		r.logger.Error("Failed to count stories", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `
		SELECT id, title, story, summary, locations, timeline,
			voice_transcript, theme, created_at, updated_at
		FROM stories
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}
	defer rows.Close()

	stories := make([]domain.Story, 0, limit)
	for rows.Next() {
		var story domain.Story
		var locationsJSON, timelineJSON []byte
		if err := rows.Scan(
			&story.ID, &story.Title, &story.Story, &story.Summary,
			&locationsJSON, &timelineJSON,
			&story.VoiceTranscript, &story.Theme,
			&story.CreatedAt, &story.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan story row", zap.Error(err))
			return nil, 0, errors.ErrDatabaseError
		}

		if err := unmarshalStrings(locationsJSON, &story.Locations); err != nil {
			r.logger.Warn("Failed to unmarshal locations", zap.String("id", story.ID), zap.Error(err))
		}
		if err := unmarshalStrings(timelineJSON, &story.Timeline); err != nil {
			r.logger.Warn("Failed to unmarshal timeline", zap.String("id", story.ID), zap.Error(err))
		}

		stories = append(stories, story)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration error", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return stories, total, nil
}

func (r *storyRepository) Update(ctx context.Context, story *domain.Story) error {
	query := `
		UPDATE stories
		SET title = $2, story = $3, summary = $4, locations = $5,
			timeline = $6, voice_transcript = $7, theme = $8, updated_at = $9
		WHERE id = $1
	`

	locationsJSON, err := json.Marshal(story.Locations)
	if err != nil {
		return errors.ErrDatabaseError
	}
	timelineJSON, err := json.Marshal(story.Timeline)
	if err != nil {
		return errors.ErrDatabaseError
	}

	result, err := r.db.ExecContext(ctx, query,
		story.ID, story.Title, story.Story, story.Summary,
		locationsJSON, timelineJSON,
		story.VoiceTranscript, story.Theme, story.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update story", zap.String("id", story.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStoryNotFound
	}

	return nil
}

func (r *storyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrStoryNotFound
	}

	return nil
}

func unmarshalStrings(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
