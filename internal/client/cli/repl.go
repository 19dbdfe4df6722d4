package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commands is the minimal surface the REPL needs to dispatch. The real App
// type satisfies it; tests provide a lightweight stub.
type commands interface {
	loggedIn() bool
	login(ctx context.Context) error
	register(ctx context.Context) error
	logout(ctx context.Context) error
	list(ctx context.Context) error
	open(ctx context.Context, args []string) error
	create(ctx context.Context) error
	save(ctx context.Context) error
	edit(ctx context.Context) error
	delete(ctx context.Context, args []string) error
	share(ctx context.Context) error
	shares(ctx context.Context) error
	revoke(ctx context.Context, args []string) error
	templates(ctx context.Context) error
	preview(ctx context.Context, args []string) error
	useTemplate(ctx context.Context, args []string) error
	export(ctx context.Context, args []string) error
	history(ctx context.Context) error
	docs(ctx context.Context) error
}

const helpLoggedOut = "Available commands: register, login, exit"
const helpLoggedIn = "Available commands: (l)ist, open <id>, new, edit, save, delete <id>, " +
	"share, shares, revoke <user>, templates, preview <id>, use <id>, " +
	"export <format>, history, docs, logout, exit"

// runREPL reads lines from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers render
// their own failures. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a commands, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "pd%s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.loggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			_ = a.register(ctx)

		case "login":
			_ = a.login(ctx)

		case "logout":
			_ = a.logout(ctx)

		case "l", "list":
			_ = a.list(ctx)

		case "open":
			_ = a.open(ctx, args)

		case "new":
			_ = a.create(ctx)

		case "edit":
			_ = a.edit(ctx)

		case "save":
			_ = a.save(ctx)

		case "delete":
			_ = a.delete(ctx, args)

		case "share":
			_ = a.share(ctx)

		case "shares":
			_ = a.shares(ctx)

		case "revoke":
			_ = a.revoke(ctx, args)

		case "templates":
			_ = a.templates(ctx)

		case "preview":
			_ = a.preview(ctx, args)

		case "use":
			_ = a.useTemplate(ctx, args)

		case "export":
			_ = a.export(ctx, args)

		case "history":
			_ = a.history(ctx)

		case "docs":
			_ = a.docs(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
