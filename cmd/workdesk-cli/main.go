// Command workdesk-cli is a small terminal client for the workdesk API.
// Session state persists in a JSON file under the user config directory,
// so login, lockout and session expiry behave consistently across runs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/workdesk/workdesk/internal/client"
	"github.com/workdesk/workdesk/internal/client/session"
)

// cliConfig is the client-side slice of the application settings. The
// server secrets are deliberately absent.
type cliConfig struct {
	BaseURL          string        `envconfig:"WORKDESK_API" default:"http://localhost:5000"`
	ClientSessionTTL time.Duration `envconfig:"CLIENT_SESSION_TTL" default:"5m"`
	LockoutAttempts  int           `envconfig:"LOCKOUT_ATTEMPTS" default:"5"`
	LockoutDuration  time.Duration `envconfig:"LOCKOUT_DURATION" default:"5m"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	var cfg cliConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	storage, err := newStorage()
	if err != nil {
		return err
	}
	tracker := session.NewTracker(storage, cfg.ClientSessionTTL)
	lockout := session.NewLockout(storage, cfg.LockoutAttempts, cfg.LockoutDuration)
	api := client.New(cfg.BaseURL, tracker, lockout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "register":
		return cmdRegister(ctx, api, rest)
	case "login":
		return cmdLogin(ctx, api, rest)
	case "verify":
		return cmdVerify(ctx, api)
	case "logout":
		api.Logout()
		fmt.Println("logged out")
		return nil
	case "forgot":
		return cmdForgot(ctx, api, rest)
	case "list":
		return cmdList(ctx, api, rest)
	case "session":
		return cmdSession(ctx, api, tracker, rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: workdesk-cli <command> [args]

commands:
  register <name> <email> <password> <question> <answer>
  login <email> <password>
  verify
  logout
  forgot check <email>
  forgot answer <email> <answer>
  forgot reset <token> <new-password>
  list <departments|employees|events|projects>
  session status
  session watch`)
}

func newStorage() (session.Storage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return session.NewMemoryStorage(), nil
	}
	base := filepath.Join(dir, "workdesk")
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, err
	}
	return session.NewFileStorage(filepath.Join(base, "session.json")), nil
}

func cmdRegister(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 5 {
		return errors.New("usage: register <name> <email> <password> <question> <answer>")
	}
	err := api.Register(ctx, client.RegisterRequest{
		Name:             args[0],
		Email:            args[1],
		Password:         args[2],
		SecurityQuestion: args[3],
		SecurityAnswer:   args[4],
	})
	if err != nil {
		return err
	}
	fmt.Println("registered")
	return nil
}

func cmdLogin(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}
	if err := api.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func cmdVerify(ctx context.Context, api *client.Client) error {
	userID, err := api.Verify(ctx)
	if err != nil {
		return err
	}
	fmt.Println("user id:", userID)
	return nil
}

func cmdForgot(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: forgot <check|answer|reset> ...")
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "check":
		if len(rest) != 1 {
			return errors.New("usage: forgot check <email>")
		}
		question, err := api.CheckEmail(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println("security question:", question)
		return nil
	case "answer":
		if len(rest) != 2 {
			return errors.New("usage: forgot answer <email> <answer>")
		}
		token, err := api.VerifyAnswer(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Println("reset token:", token)
		return nil
	case "reset":
		if len(rest) != 2 {
			return errors.New("usage: forgot reset <token> <new-password>")
		}
		if err := api.ResetPassword(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("password reset")
		return nil
	default:
		return fmt.Errorf("unknown forgot subcommand %q", sub)
	}
}

func cmdList(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: list <departments|employees|events|projects>")
	}
	switch args[0] {
	case "departments", "employees", "events", "projects":
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
	records, err := api.ListRecords(ctx, args[0])
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func cmdSession(ctx context.Context, api *client.Client, tracker *session.Tracker, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: session <status|watch>")
	}
	switch args[0] {
	case "status":
		active, minutes := api.SessionStatus()
		if !active {
			fmt.Println("no active session")
			return nil
		}
		fmt.Printf("session active, about %d minute(s) remaining\n", minutes)
		return nil
	case "watch":
		if active, _ := api.SessionStatus(); !active {
			fmt.Println("no active session")
			return nil
		}
		fmt.Println("watching session, ctrl-c to stop")
		tracker.Watch(ctx, func() {
			fmt.Println("session expired, logged out")
		})
		return nil
	default:
		return fmt.Errorf("unknown session subcommand %q", args[0])
	}
}
