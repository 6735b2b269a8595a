package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/forms"
)

func TestLogin_InvalidCredentials(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	_, err := c.Login(context.Background(), "alice", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestTokenExpired_FreshLogin(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	assert.False(t, c.TokenExpired())

	c.SetToken("")
	assert.True(t, c.TokenExpired())

	c.SetToken("garbage")
	assert.True(t, c.TokenExpired())
}

func TestGetForm_NestedQuestionsAndOptions(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	ctx := context.Background()

	all, err := c.ListForms(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	f, err := c.GetForm(ctx, all[0].ID)
	require.NoError(t, err)
	require.Len(t, f.Questions, 3)
	assert.Equal(t, form.KindMultipleChoice, f.Questions[0].Type)
	assert.Len(t, f.Questions[0].Options, 3)
	assert.Equal(t, form.KindTeam, f.Questions[2].Type)
	assert.True(t, f.IsPublished)
}

func TestGetForm_NotFound(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	_, err := c.GetForm(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestSearchUsers_ReturnsDirectoryMatches(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	members, err := c.SearchUsers(context.Background(), "campus.edu")
	require.NoError(t, err)
	assert.Len(t, members, 5)
	assert.NotEmpty(t, members[0].MatriculeNumber)
}

// TestSubmitResponse_EndToEnd drives the whole engine against the stub:
// engine-built payload in, submission id out.
func TestSubmitResponse_EndToEnd(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	ctx := context.Background()

	all, err := c.ListForms(ctx)
	require.NoError(t, err)
	f, err := c.GetForm(ctx, all[0].ID)
	require.NoError(t, err)

	members, err := c.SearchUsers(ctx, "bo")
	require.NoError(t, err)
	require.NotEmpty(t, members)

	answers := forms.NewAnswerSet()
	answers.Initialize(f.Questions)
	answers.SetScalar(f.Questions[0].ID, f.Questions[0].Options[1].ID)
	answers.SetTeam(f.Questions[2].ID, members[:1])

	payload, err := forms.BuildPayload(f.Questions, answers)
	require.NoError(t, err)
	// Optional short-text left empty: two records only.
	require.Len(t, payload, 2)

	result, err := c.SubmitResponse(ctx, f.ID, payload)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)

	subs, err := c.ListSubmissions(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Len(t, subs[0].Answers, 2)

	// The seeded form does not allow multiple responses.
	_, err = c.SubmitResponse(ctx, f.ID, payload)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestCreatePublishDeleteForm(t *testing.T) {
	c, _ := setupTestEnvironment(t)
	ctx := context.Background()

	created, err := c.CreateForm(ctx, form.CreateFormDTO{
		Title: "Club feedback",
		Questions: []form.CreateQuestionDTO{
			{Title: "How was it?", Type: form.KindMultipleChoice, IsRequired: true,
				Options: []form.CreateOptionDTO{{OptionText: "Great"}, {OptionText: "Meh"}}},
		},
	})
	require.NoError(t, err)
	assert.False(t, created.IsPublished)
	require.Len(t, created.Questions, 1)

	published, err := c.PublishForm(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	// Published forms refuse edits.
	title := "New title"
	_, err = c.UpdateForm(ctx, created.ID, form.UpdateFormDTO{Title: &title})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	require.NoError(t, c.DeleteForm(ctx, created.ID))
}

func TestCreateForm_RejectsTooFewOptions(t *testing.T) {
	c, _ := setupTestEnvironment(t)

	_, err := c.CreateForm(context.Background(), form.CreateFormDTO{
		Title: "Broken",
		Questions: []form.CreateQuestionDTO{
			{Title: "Pick", Type: form.KindDropdown,
				Options: []form.CreateOptionDTO{{OptionText: "Only one"}}},
		},
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "at least 2 options")
}
