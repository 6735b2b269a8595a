package client

import (
	"context"

	"github.com/campuspulse/engage-go/internal/domain/feed"
)

func (c *Client) ListPosts(ctx context.Context) ([]feed.Post, error) {
	var posts []feed.Post
	err := c.get(ctx, "/feed", nil, &posts)
	return posts, err
}

func (c *Client) CreatePost(ctx context.Context, input feed.CreatePostInput) (*feed.Post, error) {
	var p feed.Post
	if err := c.post(ctx, "/feed", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CommentOnPost(ctx context.Context, postID, content string) (*feed.Comment, error) {
	input := feed.CreateCommentInput{Content: content}
	var comment feed.Comment
	if err := c.post(ctx, "/feed/"+postID+"/comments", input, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) LikePost(ctx context.Context, postID string) (*feed.Post, error) {
	var p feed.Post
	if err := c.post(ctx, "/feed/"+postID+"/like", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
