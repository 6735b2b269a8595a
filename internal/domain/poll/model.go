package poll

import "time"

type Poll struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Question    string       `json:"question" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	MultiChoice bool         `json:"multiChoice"`
	IsActive    bool         `json:"isActive" gorm:"default:true"`
	EndTime     *time.Time   `json:"endTime,omitempty"`
	Options     []PollOption `json:"options" gorm:"foreignKey:PollID"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type PollOption struct {
	ID     string `json:"id" gorm:"primaryKey"`
	PollID string `json:"pollId" gorm:"index"`
	Text   string `json:"text" gorm:"not null"`
	Votes  int64  `json:"votes" gorm:"default:0"`
}
