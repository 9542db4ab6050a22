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
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Courses(ctx context.Context, args []string) error
	Category(ctx context.Context, args []string) error
	Price(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF, on "exit"/"quit" or when ctx is done.
//
//	Always:
//	  - courses [all|popular|search <term>]
//	  - category <name|any>
//	  - price <min> <max|inf>
//	  - reset          — default filters
//	  - status
//	  - help
//	  - exit | quit
//
//	Not logged in:
//	  - signup
//	  - login
//
//	Logged in:
//	  - logout
//
// Handlers report their own failures, so errors are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("cc %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: courses [all|popular|search <term>], category, price, reset, status, logout, exit")
			} else {
				printlnFn("Available commands: courses [all|popular|search <term>], category, price, reset, status, signup, login, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "c", "courses":
			_ = a.Courses(ctx, args)

		case "category":
			_ = a.Category(ctx, args)

		case "price":
			_ = a.Price(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
