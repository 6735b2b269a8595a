package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campuspulse/engage-go/internal/client"
	"github.com/campuspulse/engage-go/internal/domain/feed"
	"github.com/campuspulse/engage-go/internal/domain/poll"
)

func runListEvents(ctx context.Context, c *client.Client) error {
	events, err := c.ListEvents(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No upcoming events.")
		return nil
	}
	for _, e := range events {
		form := ""
		if e.RegistrationFormID != nil {
			form = " [registration form]"
		}
		fmt.Printf("%s  %-40s %s, %s%s\n", e.ID, e.Title, e.Location,
			e.StartTime.Format("2006-01-02 15:04"), form)
	}
	return nil
}

// runRegister registers for an event. When the event requires a
// registration form it runs the interactive fill first and links the
// resulting submission id to the registration.
func runRegister(ctx context.Context, c *client.Client, eventID string) error {
	e, err := c.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	submissionID := ""
	if e.RegistrationFormID != nil {
		fmt.Printf("%q requires a registration form.\n\n", e.Title)
		submissionID, err = runFill(ctx, c, *e.RegistrationFormID)
		if err != nil {
			return err
		}
	}

	reg, err := c.RegisterForEvent(ctx, e.ID, submissionID)
	if err != nil {
		return err
	}
	fmt.Printf("Registered for %q (%s)\n", e.Title, reg.ID)
	return nil
}

func runListPolls(ctx context.Context, c *client.Client) error {
	polls, err := c.ListPolls(ctx)
	if err != nil {
		return err
	}
	if len(polls) == 0 {
		fmt.Println("No polls available.")
		return nil
	}
	for _, p := range polls {
		fmt.Printf("%s  %s\n", p.ID, p.Question)
		for i, opt := range p.Options {
			fmt.Printf("     %d. %s (%d votes)\n", i+1, opt.Text, opt.Votes)
		}
	}
	return nil
}

func runVote(ctx context.Context, c *client.Client, pollID string, choices []string) error {
	p, err := c.GetPoll(ctx, pollID)
	if err != nil {
		return err
	}

	var optionIDs []string
	for _, choice := range choices {
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(p.Options) {
			return fmt.Errorf("invalid option %q", choice)
		}
		optionIDs = append(optionIDs, p.Options[n-1].ID)
	}

	results, err := c.Vote(ctx, pollID, optionIDs)
	if err != nil {
		return err
	}
	printResults(results.TotalVotes, results.Options)
	return nil
}

func runWatchResults(ctx context.Context, c *client.Client, pollID string) error {
	sub, err := c.WatchPollResults(ctx, pollID)
	if err != nil {
		return err
	}
	defer sub.Close()

	fmt.Println("Watching live results, Ctrl-C to stop.")
	for results := range sub.Updates() {
		fmt.Println("---")
		printResults(results.TotalVotes, results.Options)
	}
	if err := sub.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runFeed(ctx context.Context, c *client.Client) error {
	posts, err := c.ListPosts(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("The feed is empty.")
		return nil
	}
	for _, p := range posts {
		fmt.Printf("[%s] %s (%d likes)\n", p.CreatedAt.Format("2006-01-02 15:04"), p.Content, p.Likes)
		for _, comment := range p.Comments {
			fmt.Printf("    %s\n", comment.Content)
		}
	}
	return nil
}

func runPost(ctx context.Context, c *client.Client, content string) error {
	p, err := c.CreatePost(ctx, feed.CreatePostInput{Content: content})
	if err != nil {
		return err
	}
	fmt.Printf("Posted (%s)\n", p.ID)
	return nil
}

func printResults(total int64, options []poll.OptionResult) {
	for _, opt := range options {
		pct := 0.0
		if total > 0 {
			pct = float64(opt.Votes) / float64(total) * 100
		}
		fmt.Printf("%-30s %4d (%.1f%%)\n", opt.Text, opt.Votes, pct)
	}
}
