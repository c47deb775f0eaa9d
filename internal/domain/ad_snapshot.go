package domain

import "time"

// AdSnapshotEntry é a fotografia diária de um anúncio persistida no banco.
type AdSnapshotEntry struct {
	ID        int       `json:"id"`
	AdID      int64     `json:"ad_id"`
	Date      time.Time `json:"date"`
	Row       *AdRow    `json:"ad_row,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
