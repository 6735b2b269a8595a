// engagectl is a terminal front-end for the campus engagement platform:
// browse forms, fill and submit responses, register for events, vote in
// polls and follow live results.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/campuspulse/engage-go/config"
	"github.com/campuspulse/engage-go/internal/client"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: engagectl <command> [args]

Commands:
  login <username>            authenticate and save credentials
  logout                      discard saved credentials
  forms                       list forms
  form <id>                   show one form
  fill <form-id>              fill in and submit a form response
  events                      list events
  register <event-id>         register for an event (fills its form first if required)
  polls                       list polls
  vote <poll-id> <option#>... cast a vote
  results <poll-id>           follow live poll results (Ctrl-C to stop)
  feed                        show the social feed
  post <text>                 publish a feed post`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	config.LoadConfig()

	if len(os.Args) < 2 {
		usage()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd, args := os.Args[1], os.Args[2:]

	if cmd == "login" {
		if len(args) != 1 {
			usage()
		}
		if err := runLogin(ctx, args[0]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}
	if cmd == "logout" {
		if err := config.DeleteCredentials(); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println("Logged out.")
		return
	}

	c, err := newClient()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if c.TokenExpired() {
		log.Fatal("Your session has expired, run `engagectl login <username>` first")
	}

	switch cmd {
	case "forms":
		err = runListForms(ctx, c)
	case "form":
		if len(args) != 1 {
			usage()
		}
		err = runShowForm(ctx, c, args[0])
	case "fill":
		if len(args) != 1 {
			usage()
		}
		_, err = runFill(ctx, c, args[0])
	case "events":
		err = runListEvents(ctx, c)
	case "register":
		if len(args) != 1 {
			usage()
		}
		err = runRegister(ctx, c, args[0])
	case "polls":
		err = runListPolls(ctx, c)
	case "vote":
		if len(args) < 2 {
			usage()
		}
		err = runVote(ctx, c, args[0], args[1:])
	case "results":
		if len(args) != 1 {
			usage()
		}
		err = runWatchResults(ctx, c, args[0])
	case "feed":
		err = runFeed(ctx, c)
	case "post":
		if len(args) == 0 {
			usage()
		}
		err = runPost(ctx, c, strings.Join(args, " "))
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// newClient builds a client from the environment plus saved credentials.
func newClient() (*client.Client, error) {
	cfg := client.Config{
		BaseURL: config.APIBaseURL,
		Timeout: config.HTTPTimeout,
	}
	if creds, err := config.LoadCredentials(); err == nil {
		if creds.BaseURL != "" {
			cfg.BaseURL = creds.BaseURL
		}
		cfg.Token = creds.Token
	}
	return client.New(cfg)
}

func runLogin(ctx context.Context, username string) error {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	password = strings.TrimRight(password, "\r\n")

	c, err := client.New(client.Config{BaseURL: config.APIBaseURL, Timeout: config.HTTPTimeout})
	if err != nil {
		return err
	}
	resp, err := c.Login(ctx, username, password)
	if err != nil {
		return err
	}

	err = config.SaveCredentials(&config.Credentials{
		BaseURL:  config.APIBaseURL,
		Username: resp.Username,
		Token:    resp.Token,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", resp.Username)
	return nil
}
