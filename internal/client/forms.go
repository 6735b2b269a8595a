package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/domain/user"
)

func (c *Client) ListForms(ctx context.Context) ([]form.Form, error) {
	var forms []form.Form
	err := c.get(ctx, "/forms", nil, &forms)
	return forms, err
}

func (c *Client) GetForm(ctx context.Context, id string) (*form.Form, error) {
	var f form.Form
	if err := c.get(ctx, "/forms/"+id, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) CreateForm(ctx context.Context, input form.CreateFormDTO) (*form.Form, error) {
	var f form.Form
	if err := c.post(ctx, "/forms", input, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) UpdateForm(ctx context.Context, id string, input form.UpdateFormDTO) (*form.Form, error) {
	var f form.Form
	if err := c.put(ctx, "/forms/"+id, input, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) PublishForm(ctx context.Context, id string) (*form.Form, error) {
	var f form.Form
	if err := c.post(ctx, "/forms/"+id+"/publish", nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) DeleteForm(ctx context.Context, id string) error {
	return c.delete(ctx, "/forms/"+id)
}

// SubmitResponse posts assembled answers and returns the submission id that
// dependent actions (event registration linking) consume.
func (c *Client) SubmitResponse(ctx context.Context, formID string, answers []form.SubmissionAnswer) (*form.SubmitFormResult, error) {
	var result form.SubmitFormResult
	input := form.SubmitFormInput{Answers: answers}
	if err := c.post(ctx, "/forms/"+formID+"/submit", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListSubmissions(ctx context.Context, formID string) ([]form.Submission, error) {
	var subs []form.Submission
	err := c.get(ctx, fmt.Sprintf("/forms/%s/submissions", formID), nil, &subs)
	return subs, err
}

// SearchUsers queries the user directory. Satisfies forms.UserSearcher.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]user.TeamMember, error) {
	var members []user.TeamMember
	q := url.Values{"query": {query}}
	err := c.get(ctx, "/forms/users/search", q, &members)
	return members, err
}
