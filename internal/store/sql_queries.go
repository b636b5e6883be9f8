package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, role, created_at;`

	// password_hash is deliberately absent from the default column list;
	// only findUserByEmailWithPassword reads it, for the login path.
	findUserByEmail = `SELECT user_id, name, email, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByEmailWithPassword = `SELECT user_id, name, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT user_id, name, email, role, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserRole = `UPDATE users
    SET role = $2
    WHERE user_id = $1;`

	getAllVideos = `SELECT video_id, title, description, youtube_id, category, created_at, updated_at
    FROM videos
    ORDER BY created_at DESC;`

	getVideoByID = `SELECT video_id, title, description, youtube_id, category, created_at, updated_at
    FROM videos
    WHERE video_id = $1;`

	createVideo = `INSERT INTO videos (title, description, youtube_id, category)
    VALUES ($1, $2, $3, $4)
    RETURNING video_id, title, description, youtube_id, category, created_at, updated_at;`

	deleteVideo = `DELETE FROM videos
    WHERE video_id = $1;`
)
