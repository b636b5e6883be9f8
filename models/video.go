package models

import "time"

// Video is a single curated catalog entry pointing at a YouTube video.
type Video struct {
	// VideoID is the unique identifier of the entry, assigned by the database.
	VideoID int64 `json:"id"`

	// Title of the video shown in the catalog list.
	Title string `json:"title"`

	// Description is a short free-form summary.
	Description string `json:"description"`

	// YouTubeID is the 11-character YouTube video identifier,
	// not the full watch URL.
	YouTubeID string `json:"youtubeId"`

	// Category is an optional label used for grouping entries.
	Category string `json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// VideoUpdate represents a partial update of a single catalog entry.
// Only non-nil fields will be written (partial update support).
type VideoUpdate struct {
	// VideoID is the identifier of the entry to update. Required.
	VideoID int64 `json:"-"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	YouTubeID   *string `json:"youtubeId,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Empty reports whether the update contains no fields to change.
func (u VideoUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.YouTubeID == nil && u.Category == nil
}
