package feed

import "time"

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	AuthorID  string    `json:"authorId" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Likes     int64     `json:"likes" gorm:"default:0"`
	Comments  []Comment `json:"comments" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"postId" gorm:"index"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}
