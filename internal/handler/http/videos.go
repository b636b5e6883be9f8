// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/internal/store"
	"github.com/kuppisite/video-catalog/internal/utils"
	"github.com/kuppisite/video-catalog/models"
)

// listVideos handles GET /api/videos.
func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.services.ListVideos(r.Context())
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("listing videos failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VideoListResponse{ //nolint:errcheck
		Success: true,
		Count:   len(videos),
		Data:    videos,
	}, http.StatusOK)
}

// getVideo handles GET /api/videos/{id}.
func (h *Handler) getVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDFromRequest(r)
	if err != nil {
		// a non-numeric id can never match an entry, same outcome as unknown id
		writeError(w, store.ErrVideoNotFound)
		return
	}

	video, err := h.services.GetVideo(r.Context(), videoID)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Int64("video_id", videoID).Msg("video lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VideoResponse{Success: true, Data: video}, http.StatusOK) //nolint:errcheck
}

// createVideo handles POST /api/videos. Admin only.
func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var video models.Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		log.Debug().Err(err).Msg("video payload is not valid JSON")
		writeFailure(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.CreateVideo(r.Context(), video)
	if err != nil {
		log.Debug().Err(err).Msg("video creation failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("video_id", created.VideoID).Msg("video created")
	utils.WriteJSON(w, models.VideoResponse{Success: true, Data: created}, http.StatusCreated) //nolint:errcheck
}

// updateVideo handles PUT /api/videos/{id}. Admin only.
// The body is a partial update: absent fields keep their stored values.
func (h *Handler) updateVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	videoID, err := videoIDFromRequest(r)
	if err != nil {
		writeError(w, store.ErrVideoNotFound)
		return
	}

	var update models.VideoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Debug().Err(err).Msg("video update payload is not valid JSON")
		writeFailure(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.VideoID = videoID

	updated, err := h.services.UpdateVideo(r.Context(), update)
	if err != nil {
		log.Debug().Err(err).Int64("video_id", videoID).Msg("video update failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("video_id", videoID).Msg("video updated")
	utils.WriteJSON(w, models.VideoResponse{Success: true, Data: updated}, http.StatusOK) //nolint:errcheck
}

// deleteVideo handles DELETE /api/videos/{id}. Admin only.
func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	videoID, err := videoIDFromRequest(r)
	if err != nil {
		writeError(w, store.ErrVideoNotFound)
		return
	}

	if err := h.services.DeleteVideo(r.Context(), videoID); err != nil {
		log.Debug().Err(err).Int64("video_id", videoID).Msg("video deletion failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("video_id", videoID).Msg("video deleted")
	utils.WriteJSON(w, models.DeleteResponse{Success: true, Data: map[string]any{}}, http.StatusOK) //nolint:errcheck
}

func videoIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
