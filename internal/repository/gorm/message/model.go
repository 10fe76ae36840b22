package messagegorm

import "time"

// MessageModel is the GORM persistence model for messages.
// It maps directly to the "messages" table in Postgres.
type MessageModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:text;not null"`
	Author    string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName overrides the default table name used by GORM.
func (MessageModel) TableName() string {
	return "messages"
}
