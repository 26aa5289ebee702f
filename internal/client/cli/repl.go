package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	handleError(ctx context.Context, err error)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Resources() []string
	List(ctx context.Context, resource string) error
	Get(ctx context.Context, resource, id string) error
	Delete(ctx context.Context, resource, id string) error
	Upload(ctx context.Context, path string) error
	ReviewStats(ctx context.Context) error
	PublishReview(ctx context.Context, id string) error
	HideReview(ctx context.Context, id string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The prompt shows statusFn(). Handler errors go through a.handleError so
// a lost session is reported once, in one place. The loop exits on EOF
// or on "exit" / "quit".
//
//	Not logged in:
//	  help, login, exit | quit
//
//	Logged in:
//	  help, whoami, logout
//	  list <resource>, get <resource> <id>, delete <resource> <id>
//	  upload <file>, reviews stats, publish <id>, hide <id>
//	  exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wa> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			a.handleError(ctx, err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn(ctx) {
			printlnFn("Available commands: whoami, (l)ist <resource>, get <resource> <id>, delete <resource> <id>, upload <file>, reviews stats, publish <id>, hide <id>, logout, exit")
			printlnFn("Resources:", strings.Join(a.Resources(), ", "))
		} else {
			printlnFn("Available commands: login, exit")
		}

	case "login":
		return a.Login(ctx)

	case "logout":
		return a.Logout(ctx)

	case "whoami":
		return a.WhoAmI(ctx)

	case "l", "list":
		if len(args) != 1 {
			printlnFn("Usage: list <resource>")
			return nil
		}
		return a.List(ctx, args[0])

	case "get":
		if len(args) != 2 {
			printlnFn("Usage: get <resource> <id>")
			return nil
		}
		return a.Get(ctx, args[0], args[1])

	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: delete <resource> <id>")
			return nil
		}
		return a.Delete(ctx, args[0], args[1])

	case "upload":
		if len(args) != 1 {
			printlnFn("Usage: upload <file>")
			return nil
		}
		return a.Upload(ctx, args[0])

	case "reviews":
		if len(args) != 1 || args[0] != "stats" {
			printlnFn("Usage: reviews stats")
			return nil
		}
		return a.ReviewStats(ctx)

	case "publish":
		if len(args) != 1 {
			printlnFn("Usage: publish <id>")
			return nil
		}
		return a.PublishReview(ctx, args[0])

	case "hide":
		if len(args) != 1 {
			printlnFn("Usage: hide <id>")
			return nil
		}
		return a.HideReview(ctx, args[0])

	default:
		printlnFn("Unknown command:", cmd)
	}
	return nil
}
