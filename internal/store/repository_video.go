package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/models"
)

// videoRepository is the PostgreSQL-backed implementation of
// [VideoRepository] over the "videos" table.
type videoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVideoRepository constructs a [VideoRepository] backed by the provided
// database connection and logger.
func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllVideos returns every catalog entry, newest first.
func (r *videoRepository) GetAllVideos(ctx context.Context) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllVideos)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetAllVideos").Msg("error: listing videos failed")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.VideoID, &v.Title, &v.Description, &v.YouTubeID, &v.Category, &v.CreatedAt, &v.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*videoRepository.GetAllVideos").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.classify(err)
	}

	return videos, nil
}

// GetVideoByID retrieves a single catalog entry.
// A missing row yields [ErrVideoNotFound].
func (r *videoRepository) GetVideoByID(ctx context.Context, videoID int64) (models.Video, error) {
	log := logger.FromContext(ctx)

	var v models.Video
	row := r.db.QueryRowContext(ctx, getVideoByID, videoID)

	if err := row.Scan(&v.VideoID, &v.Title, &v.Description, &v.YouTubeID, &v.Category, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Video{}, ErrVideoNotFound
		}
		log.Err(err).Str("func", "*videoRepository.GetVideoByID").Msg("error: video lookup failed")
		return models.Video{}, r.db.classify(err)
	}

	return v, nil
}

// CreateVideo persists a new catalog entry and returns it with
// server-assigned fields populated.
func (r *videoRepository) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)

	var created models.Video
	row := r.db.QueryRowContext(ctx, createVideo, video.Title, video.Description, video.YouTubeID, video.Category)

	if err := row.Scan(&created.VideoID, &created.Title, &created.Description, &created.YouTubeID, &created.Category, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*videoRepository.CreateVideo").Msg("error: creating video failed")
		return models.Video{}, r.db.classify(err)
	}

	return created, nil
}

// UpdateVideo applies a partial update built with squirrel: only non-nil
// fields of the update end up in the SET clause, updated_at always does.
// Targeting a missing entry yields [ErrVideoNotFound].
func (r *videoRepository) UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildVideoUpdateQuery(update)
	if err != nil {
		return models.Video{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v models.Video
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&v.VideoID, &v.Title, &v.Description, &v.YouTubeID, &v.Category, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Video{}, ErrVideoNotFound
		}
		log.Err(err).Str("func", "*videoRepository.UpdateVideo").Msg("error: updating video failed")
		return models.Video{}, r.db.classify(err)
	}

	return v, nil
}

// DeleteVideo removes a catalog entry. Targeting a missing entry yields
// [ErrVideoNotFound].
func (r *videoRepository) DeleteVideo(ctx context.Context, videoID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteVideo, videoID)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.DeleteVideo").Msg("error: deleting video failed")
		return r.db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.classify(err)
	}
	if affected == 0 {
		return ErrVideoNotFound
	}

	return nil
}

// buildVideoUpdateQuery dynamically builds the partial UPDATE statement.
func buildVideoUpdateQuery(update models.VideoUpdate) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("videos").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.YouTubeID != nil {
		builder = builder.Set("youtube_id", *update.YouTubeID)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	return builder.
		Where(sq.Eq{"video_id": update.VideoID}).
		Suffix("RETURNING video_id, title, description, youtube_id, category, created_at, updated_at").
		ToSql()
}
