package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/campuspulse/engage-go/config"
	"github.com/campuspulse/engage-go/internal/client"
	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/forms"
	"golang.org/x/time/rate"
)

func runListForms(ctx context.Context, c *client.Client) error {
	all, err := c.ListForms(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No forms available.")
		return nil
	}
	for _, f := range all {
		status := "draft"
		if f.IsPublished {
			status = "published"
		}
		fmt.Printf("%s  %-40s %s, %d questions\n", f.ID, f.Title, status, len(f.Questions))
	}
	return nil
}

func runShowForm(ctx context.Context, c *client.Client, id string) error {
	f, err := c.GetForm(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n\n", f.Title, f.Description)
	for _, q := range sortedQuestions(f) {
		meta := forms.LookupOrFallback(q.Type)
		required := ""
		if q.IsRequired {
			required = " (required)"
		}
		fmt.Printf("%d. %s [%s]%s\n", q.Order, q.Title, meta.Label, required)
		for _, opt := range q.Options {
			fmt.Printf("     - %s\n", opt.OptionText)
		}
	}
	return nil
}

// runFill drives one interactive response session and returns the submission
// id for callers that chain into event registration.
func runFill(ctx context.Context, c *client.Client, formID string) (string, error) {
	f, err := c.GetForm(ctx, formID)
	if err != nil {
		return "", err
	}
	if len(f.Questions) == 0 {
		fmt.Println("This form has no questions.")
		return "", nil
	}

	questions := sortedQuestions(f)
	answers := forms.NewAnswerSet()
	answers.Initialize(questions)
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s\n%s\n", f.Title, f.Description)
	for _, q := range questions {
		if err := askQuestion(ctx, c, reader, q, answers); err != nil {
			return "", err
		}
	}

	payload, err := forms.BuildPayload(questions, answers)
	if err != nil {
		return "", err
	}

	result, err := c.SubmitResponse(ctx, f.ID, payload)
	if err != nil {
		return "", err
	}
	fmt.Printf("Response submitted (%s)\n", result.ID)
	return result.ID, nil
}

func askQuestion(ctx context.Context, c *client.Client, reader *bufio.Reader, q form.Question, answers *forms.AnswerSet) error {
	meta := forms.LookupOrFallback(q.Type)
	required := ""
	if q.IsRequired {
		required = " *"
	}
	fmt.Printf("\n%s%s [%s]\n", q.Title, required, meta.Label)
	if q.Description != "" {
		fmt.Println(q.Description)
	}

	switch {
	case q.Type == form.KindTeam:
		return askTeam(ctx, c, reader, q, answers)

	case q.Type == form.KindCheckboxes:
		printOptions(q)
		fmt.Print("Select options (comma-separated numbers, empty to skip): ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Printf("Ignoring invalid choice %q\n", part)
				continue
			}
			answers.ToggleOption(q.ID, q.Options[n-1].ID)
		}
		return nil

	case meta.RequiresOptions:
		printOptions(q)
		fmt.Print("Select one (number, empty to skip): ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Printf("Ignoring invalid choice %q\n", line)
			return nil
		}
		answers.SetScalar(q.ID, q.Options[n-1].ID)
		return nil

	default:
		fmt.Print("> ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}
		answers.SetScalar(q.ID, line)
		return nil
	}
}

// askTeam runs the search/select loop backed by the team resolver. A
// terminal has no keystroke stream, so each entered line is one search; the
// resolver still applies the same dedup, cap and failure semantics the
// type-ahead surfaces get.
func askTeam(ctx context.Context, c *client.Client, reader *bufio.Reader, q form.Question, answers *forms.AnswerSet) error {
	resolver := forms.NewTeamResolver(c, forms.ResolverConfig{
		Debounce:       config.SearchDebounce,
		MinQueryLength: config.SearchMinQuery,
		MaxMembers:     config.TeamMaxMembers,
		SearchRate:     rate.Limit(config.SearchRate),
		SearchBurst:    config.SearchBurst,
	})
	defer resolver.Close()

	for {
		if resolver.Full() {
			fmt.Printf("Team is full (%d members).\n", len(resolver.Members()))
			break
		}
		fmt.Print("Search a member (empty to finish): ")
		query, err := readLine(reader)
		if err != nil {
			return err
		}
		if query == "" {
			break
		}

		results, err := resolver.Search(ctx, query)
		if err != nil {
			if err == forms.ErrQueryTooShort {
				fmt.Println("Type at least 2 characters.")
				continue
			}
			// Search failure is not "no results": say so and let the
			// user retry.
			fmt.Printf("Search failed: %v\n", err)
			continue
		}
		if len(results) == 0 {
			fmt.Println("No matching users.")
			continue
		}

		for i, m := range results {
			fmt.Printf("  %d. %s <%s> (%s)\n", i+1, m.FullName(), m.Email, m.MatriculeNumber)
		}
		fmt.Print("Add (number, empty to search again): ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(results) {
			fmt.Printf("Ignoring invalid choice %q\n", line)
			continue
		}
		if err := resolver.AddMember(results[n-1]); err != nil {
			fmt.Println(err)
		} else {
			fmt.Printf("Added %s (%d selected)\n", results[n-1].FullName(), len(resolver.Members()))
		}
	}

	answers.SetTeam(q.ID, resolver.Members())
	return nil
}

func printOptions(q form.Question) {
	for i, opt := range q.Options {
		fmt.Printf("  %d. %s\n", i+1, opt.OptionText)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func sortedQuestions(f *form.Form) []form.Question {
	questions := append([]form.Question(nil), f.Questions...)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
	return questions
}
