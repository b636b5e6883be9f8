package service

import (
	"context"
	"fmt"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/models"
)

// videoService is the concrete implementation of VideoService. It validates
// catalog entries and delegates persistence to a VideoRepository.
type videoService struct {
	videoRepository store.VideoRepository
	logger          *logger.Logger
}

// NewVideoService constructs a VideoService wired to the given repository.
func NewVideoService(videoRepository store.VideoRepository, logger *logger.Logger) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		logger:          logger,
	}
}

func (v *videoService) ListVideos(ctx context.Context) ([]models.Video, error) {
	videos, err := v.videoRepository.GetAllVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing videos failed: %w", err)
	}

	return videos, nil
}

func (v *videoService) GetVideo(ctx context.Context, videoID int64) (models.Video, error) {
	video, err := v.videoRepository.GetVideoByID(ctx, videoID)
	if err != nil {
		return models.Video{}, fmt.Errorf("video lookup failed: %w", err)
	}

	return video, nil
}

// CreateVideo validates the required fields (title, description, and the
// YouTube id; category is optional) and persists the entry.
func (v *videoService) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)

	if err := validateVideo(video); err != nil {
		log.Err(err).Str("title", video.Title).Msg("invalid video data provided")
		return models.Video{}, err
	}

	created, err := v.videoRepository.CreateVideo(ctx, video)
	if err != nil {
		log.Err(err).Str("title", video.Title).Msg("video creation ended with error")
		return models.Video{}, fmt.Errorf("video creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateVideo applies a partial update. Fields that are present must not be
// blanked out: setting title, description, or the YouTube id to an empty
// string is rejected the same way a missing field is on create.
func (v *videoService) UpdateVideo(ctx context.Context, update models.VideoUpdate) (models.Video, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.Video{}, ErrNoFieldsToUpdate
	}
	if err := validateVideoUpdate(update); err != nil {
		log.Err(err).Int64("id", update.VideoID).Msg("invalid video update provided")
		return models.Video{}, err
	}

	updated, err := v.videoRepository.UpdateVideo(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.VideoID).Msg("video update ended with error")
		return models.Video{}, fmt.Errorf("video update ended with error: %w", err)
	}

	return updated, nil
}

func (v *videoService) DeleteVideo(ctx context.Context, videoID int64) error {
	log := logger.FromContext(ctx)

	if err := v.videoRepository.DeleteVideo(ctx, videoID); err != nil {
		log.Err(err).Int64("id", videoID).Msg("video deletion ended with error")
		return fmt.Errorf("video deletion ended with error: %w", err)
	}

	return nil
}

func validateVideo(video models.Video) error {
	if video.Title == "" {
		return ErrTitleRequired
	}
	if video.Description == "" {
		return ErrDescriptionRequired
	}
	if video.YouTubeID == "" {
		return ErrYouTubeIDRequired
	}

	return nil
}

func validateVideoUpdate(update models.VideoUpdate) error {
	if update.Title != nil && *update.Title == "" {
		return ErrTitleRequired
	}
	if update.Description != nil && *update.Description == "" {
		return ErrDescriptionRequired
	}
	if update.YouTubeID != nil && *update.YouTubeID == "" {
		return ErrYouTubeIDRequired
	}

	return nil
}
