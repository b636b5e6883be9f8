package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/kuppisite/video-catalog/internal/logger"
	"github.com/kuppisite/video-catalog/models"
)

func newTestVideoRepo(t *testing.T) (*videoRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	repo := &videoRepository{
		db: &DB{
			DB:                 db,
			logger:             l,
			errorClassificator: NewPostgresErrorClassifier(),
		},
		logger: l,
	}

	return repo, mock, db
}

func videoColumns() []string {
	return []string{"video_id", "title", "description", "youtube_id", "category", "created_at", "updated_at"}
}

func TestGetAllVideos_Success(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(videoColumns()).
		AddRow(2, "Newest", "desc", "dQw4w9WgXcQ", "music", now, now).
		AddRow(1, "Oldest", "desc", "jNQXAC9IVRw", "history", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT video_id").WillReturnRows(rows)

	videos, err := repo.GetAllVideos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].Title != "Newest" {
		t.Errorf("expected newest-first ordering, got %q first", videos[0].Title)
	}
}

func TestGetAllVideos_Empty(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT video_id").WillReturnRows(sqlmock.NewRows(videoColumns()))

	videos, err := repo.GetAllVideos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if videos == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(videos) != 0 {
		t.Fatalf("expected no videos, got %d", len(videos))
	}
}

func TestGetVideoByID_NotFound(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT video_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVideoByID(context.Background(), 404)
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestGetVideoByID_StoreUnavailable(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT video_id").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ConnectionDoesNotExist))

	_, err := repo.GetVideoByID(context.Background(), 1)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestCreateVideo_Success(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	video := models.Video{
		Title:       "Intro",
		Description: "First lesson",
		YouTubeID:   "dQw4w9WgXcQ",
		Category:    "basics",
	}

	now := time.Now()
	rows := sqlmock.NewRows(videoColumns()).
		AddRow(1, video.Title, video.Description, video.YouTubeID, video.Category, now, now)

	mock.ExpectQuery("INSERT INTO videos").
		WithArgs(video.Title, video.Description, video.YouTubeID, video.Category).
		WillReturnRows(rows)

	created, err := repo.CreateVideo(context.Background(), video)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.VideoID != 1 {
		t.Errorf("expected VideoID=1, got %d", created.VideoID)
	}
	if created.YouTubeID != video.YouTubeID {
		t.Errorf("expected youtube id %s, got %s", video.YouTubeID, created.YouTubeID)
	}
}

func TestUpdateVideo_Success(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	title := "Renamed"
	update := models.VideoUpdate{VideoID: 1, Title: &title}

	now := time.Now()
	rows := sqlmock.NewRows(videoColumns()).
		AddRow(1, title, "desc", "dQw4w9WgXcQ", "basics", now, now)

	mock.ExpectQuery("UPDATE videos").
		WithArgs(title, int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateVideo(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
}

func TestUpdateVideo_NotFound(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	title := "Renamed"
	mock.ExpectQuery("UPDATE videos").
		WithArgs(title, int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateVideo(context.Background(), models.VideoUpdate{VideoID: 404, Title: &title})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestDeleteVideo_Success(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM videos").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteVideo(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteVideo_NotFound(t *testing.T) {
	repo, mock, db := newTestVideoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM videos").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteVideo(context.Background(), 404)
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

// ---- partial UPDATE statement construction ----

func TestBuildVideoUpdateQuery_OnlyChangedColumns(t *testing.T) {
	title := "New title"
	category := "history"

	query, args, err := buildVideoUpdateQuery(models.VideoUpdate{
		VideoID:  5,
		Title:    &title,
		Category: &category,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "title = ") || !strings.Contains(query, "category = ") {
		t.Errorf("expected title and category in SET clause, got %q", query)
	}
	if strings.Contains(query, "description") || strings.Contains(query, "youtube_id") {
		t.Errorf("unchanged columns leaked into SET clause: %q", query)
	}
	if !strings.Contains(query, "updated_at = NOW()") {
		t.Errorf("expected updated_at = NOW() in SET clause, got %q", query)
	}
	if !strings.Contains(query, "RETURNING video_id") {
		t.Errorf("expected RETURNING clause, got %q", query)
	}

	// NOW() is inlined, so args are the two values plus the id
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if args[0] != title || args[1] != category || args[2] != int64(5) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildVideoUpdateQuery_UsesDollarPlaceholders(t *testing.T) {
	title := "New title"

	query, _, err := buildVideoUpdateQuery(models.VideoUpdate{VideoID: 1, Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "?") {
		t.Errorf("expected dollar placeholders, got %q", query)
	}
	if !strings.Contains(query, "$1") || !strings.Contains(query, "$2") {
		t.Errorf("expected $1 and $2 placeholders, got %q", query)
	}
}
