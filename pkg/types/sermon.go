package types

import "time"

type Sermon struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Speaker      string    `db:"speaker" json:"speaker"`
	YoutubeURL   string    `db:"youtube_url" json:"youtube_url"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url"`
	Date         time.Time `db:"date" json:"date"`
	Series       *string   `db:"series" json:"series"`
}
