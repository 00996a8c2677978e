package database

import (
	"database/sql"
	"fmt"
)

// CreatePostLog records one tweet attempt
func CreatePostLog(post *PostLog) error {
	db := GetDB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := db.Exec(
		`INSERT INTO post_log (id, city, tweet_text, char_count, status, error_message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.ID, post.City, post.TweetText, post.CharCount, post.Status, post.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post log: %w", err)
	}

	return nil
}

// GetLatestPost retrieves the most recent post log entry.
// Returns nil if no posts are recorded (not an error condition).
func GetLatestPost() (*PostLog, error) {
	db := GetDB()
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	query := `
		SELECT id, city, tweet_text, char_count, status, COALESCE(error_message, ''), created_at
		FROM post_log
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`

	var p PostLog
	err := db.QueryRow(query).Scan(&p.ID, &p.City, &p.TweetText, &p.CharCount, &p.Status, &p.ErrorMessage, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest post: %w", err)
	}

	return &p, nil
}

// GetRecentPosts retrieves post log entries newest first, capped at limit
func GetRecentPosts(limit int) ([]PostLog, error) {
	db := GetDB()
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, city, tweet_text, char_count, status, COALESCE(error_message, ''), created_at
		FROM post_log
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []PostLog
	for rows.Next() {
		var p PostLog
		err := rows.Scan(&p.ID, &p.City, &p.TweetText, &p.CharCount, &p.Status, &p.ErrorMessage, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(posts) == 0 {
		return []PostLog{}, nil
	}

	return posts, nil
}
