package feed

type CreatePostInput struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CreateCommentInput struct {
	Content string `json:"content" binding:"required"`
}
