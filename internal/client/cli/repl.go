package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Status(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Get(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Activate(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	ReportStatus(ctx context.Context, args []string) error
	StoreStatus(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Token(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  list <resource> [name=value ...]        search=, status=, page=, limit=, sort_by=, sort_order=, filters
  get <resource> <id>
  create <resource> name=value ...
  update <resource> <id> name=value ...
  delete <resource> <id>
  activate <bank-account id>              make the account the only active one
  toggle <faq id>                         flip an FAQ between active and inactive
  report-status <id> <status> [notes]
  store-status <id> <status> [notes]
  approve stores|payments <id> [notes]
  reject stores|payments <id> [notes]
  export excel|pdf [name=value ...]       save a report export
  dashboard                               stats of every resource
  status                                  connectivity and failover state
  token                                   enter a bearer token
  exit | quit
Resources: categories, faqs, reports, bank-accounts, stores, payments`

// runREPL starts a simple read–eval–print loop for the admin CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches the remaining tokens to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	commands := map[string]func(context.Context, []string) error{
		"status":        a.Status,
		"l":             a.List,
		"list":          a.List,
		"get":           a.Get,
		"create":        a.Create,
		"update":        a.Update,
		"delete":        a.Delete,
		"activate":      a.Activate,
		"toggle":        a.Toggle,
		"report-status": a.ReportStatus,
		"store-status":  a.StoreStatus,
		"approve":       a.Approve,
		"reject":        a.Reject,
		"export":        a.Export,
		"dashboard":     a.Dashboard,
		"token":         a.Token,
	}

	for {
		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))
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
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		run, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := run(ctx, args); err != nil {
			printlnFn("error:", describe(err))
		}
	}
}

// describe renders err with the field messages of a rejected request.
func describe(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return err.Error()
	}

	keys := make([]string, 0, len(apiErr.Fields))
	for k := range apiErr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(err.Error())
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %s", k, apiErr.Fields[k])
	}
	return b.String()
}
