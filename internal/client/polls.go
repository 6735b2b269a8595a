package client

import (
	"context"

	"github.com/campuspulse/engage-go/internal/domain/poll"
)

func (c *Client) ListPolls(ctx context.Context) ([]poll.Poll, error) {
	var polls []poll.Poll
	err := c.get(ctx, "/polls", nil, &polls)
	return polls, err
}

func (c *Client) GetPoll(ctx context.Context, id string) (*poll.Poll, error) {
	var p poll.Poll
	if err := c.get(ctx, "/polls/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Vote(ctx context.Context, pollID string, optionIDs []string) (*poll.Results, error) {
	input := poll.VoteInput{OptionIDs: optionIDs}
	var results poll.Results
	if err := c.post(ctx, "/polls/"+pollID+"/vote", input, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *Client) PollResults(ctx context.Context, pollID string) (*poll.Results, error) {
	var results poll.Results
	if err := c.get(ctx, "/polls/"+pollID+"/results", nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
