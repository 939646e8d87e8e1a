package model

import "time"

// カートのスナップショット。セッションキーごとに1行。
// Itemsは明細配列のJSON。SchemaVersionは将来の形式変更に備えて保存する。
type CartRecord struct {
	SessionKey    string    `gorm:"primaryKey;type:varchar(64)" json:"session_key"`
	SchemaVersion int       `gorm:"not null;default:1" json:"schema_version"`
	Items         string    `gorm:"type:text;not null" json:"items"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
