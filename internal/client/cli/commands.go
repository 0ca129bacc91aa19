package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
	"github.com/dmitrijs2005/marketadmin/internal/client/tokens"
)

var (
	errUnknownResource = errors.New("unknown resource")
	errUsage           = errors.New("usage")
)

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

func (a *App) table(name string) (table, error) {
	t, ok := a.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", errUnknownResource, name, strings.Join(models.Resources, ", "))
	}
	return t, nil
}

// resourceAndID parses "<resource> <id> [rest...]".
func (a *App) resourceAndID(args []string, text string) (table, int64, []string, error) {
	if len(args) < 2 {
		return nil, 0, nil, usage(text)
	}
	t, err := a.table(args[0])
	if err != nil {
		return nil, 0, nil, err
	}
	id, err := parseID(args[1])
	if err != nil {
		return nil, 0, nil, err
	}
	return t, id, args[2:], nil
}

func (a *App) show(r result, err error) error {
	if err != nil {
		return err
	}
	render(a.out, r)
	return nil
}

// showEnv renders a typed envelope returned by a facade.
func showEnv[X any](a *App, env *models.Envelope[X], err error) error {
	r, err := resultOf(env, err)
	return a.show(r, err)
}

func (a *App) List(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("list <resource> [name=value ...]")
	}
	t, err := a.table(args[0])
	if err != nil {
		return err
	}
	q, err := parseQuery(args[1:])
	if err != nil {
		return err
	}
	return a.show(t.list(ctx, q))
}

func (a *App) Get(ctx context.Context, args []string) error {
	t, id, _, err := a.resourceAndID(args, "get <resource> <id>")
	if err != nil {
		return err
	}
	return a.show(t.get(ctx, id))
}

func (a *App) Create(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("create <resource> name=value ...")
	}
	t, err := a.table(args[0])
	if err != nil {
		return err
	}
	items, err := models.AssignmentsFromStrings(args[1:])
	if err != nil {
		return err
	}
	return a.show(t.create(ctx, items))
}

func (a *App) Update(ctx context.Context, args []string) error {
	t, id, rest, err := a.resourceAndID(args, "update <resource> <id> name=value ...")
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return usage("update <resource> <id> name=value ...")
	}
	items, err := models.AssignmentsFromStrings(rest)
	if err != nil {
		return err
	}
	return a.show(t.update(ctx, id, items))
}

func (a *App) Delete(ctx context.Context, args []string) error {
	t, id, _, err := a.resourceAndID(args, "delete <resource> <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.scanner, fmt.Sprintf("Delete %s %d?", args[0], id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.show(t.remove(ctx, id))
}

// singleID parses "<id>" for the actions bound to one resource.
func singleID(args []string, text string) (int64, error) {
	if len(args) != 1 {
		return 0, usage(text)
	}
	return parseID(args[0])
}

func (a *App) Activate(ctx context.Context, args []string) error {
	id, err := singleID(args, "activate <bank-account id>")
	if err != nil {
		return err
	}
	env, err := a.services.BankAccounts.SetActive(ctx, id)
	return showEnv(a, env, err)
}

func (a *App) Toggle(ctx context.Context, args []string) error {
	id, err := singleID(args, "toggle <faq id>")
	if err != nil {
		return err
	}
	env, err := a.services.FAQs.ToggleStatus(ctx, id)
	return showEnv(a, env, err)
}

// statusChange parses "<id> <status> [notes...]".
func statusChange(args []string, text string) (int64, models.StatusChange, error) {
	if len(args) < 2 {
		return 0, models.StatusChange{}, usage(text)
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, models.StatusChange{}, err
	}
	return id, models.StatusChange{Status: args[1], Notes: strings.Join(args[2:], " ")}, nil
}

func (a *App) ReportStatus(ctx context.Context, args []string) error {
	id, ch, err := statusChange(args, "report-status <id> <status> [notes]")
	if err != nil {
		return err
	}
	if !models.ReportStatuses.Contains(ch.Status) {
		return fmt.Errorf("status must be one of %s", strings.Join(models.ReportStatuses, ", "))
	}
	env, err := a.services.Reports.UpdateStatus(ctx, id, ch)
	return showEnv(a, env, err)
}

func (a *App) StoreStatus(ctx context.Context, args []string) error {
	id, ch, err := statusChange(args, "store-status <id> <status> [notes]")
	if err != nil {
		return err
	}
	if !models.StoreStatuses.Contains(ch.Status) {
		return fmt.Errorf("status must be one of %s", strings.Join(models.StoreStatuses, ", "))
	}
	env, err := a.services.Stores.UpdateStatus(ctx, id, ch)
	return showEnv(a, env, err)
}

// decide parses "stores|payments <id> [notes...]" and applies approve or
// reject.
func (a *App) decide(ctx context.Context, args []string, approve bool) error {
	verb := "reject"
	if approve {
		verb = "approve"
	}
	text := verb + " stores|payments <id> [notes]"
	if len(args) < 2 {
		return usage(text)
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	notes := strings.Join(args[2:], " ")

	switch args[0] {
	case models.ResourceStores:
		if approve {
			env, err := a.services.Stores.Approve(ctx, id, notes)
			return showEnv(a, env, err)
		}
		env, err := a.services.Stores.Reject(ctx, id, notes)
		return showEnv(a, env, err)
	case models.ResourcePayments:
		if approve {
			env, err := a.services.Payments.Approve(ctx, id, notes)
			return showEnv(a, env, err)
		}
		env, err := a.services.Payments.Reject(ctx, id, notes)
		return showEnv(a, env, err)
	}
	return usage(text)
}

func (a *App) Approve(ctx context.Context, args []string) error { return a.decide(ctx, args, true) }
func (a *App) Reject(ctx context.Context, args []string) error  { return a.decide(ctx, args, false) }

func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 || !slices.Contains([]string{services.FormatExcel, services.FormatPDF}, args[0]) {
		return usage("export excel|pdf [name=value ...]")
	}
	q, err := parseQuery(args[1:])
	if err != nil {
		return err
	}
	location, err := a.services.Reports.ExportTo(ctx, args[0], q, a.sink)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved to", location)
	return nil
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	summaries, err := a.services.Overview(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, s := range summaries {
		source := ""
		if s.Fallback {
			source = strings.TrimSpace(services.OfflineSuffix)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Resource, formatStats(s.Stats), source)
	}
	return tw.Flush()
}

func (a *App) Status(_ context.Context, _ []string) error {
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}
	fmt.Fprintln(a.out, "backend:", a.config.APIBaseURL, mode)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tPOLICY\tSOURCE\tOFFLINE\tLAST ERROR")
	for _, st := range a.services.Statuses() {
		source := string(st.LastSource)
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", st.Resource, st.Policy, source, st.Offline, st.LastError)
	}
	return tw.Flush()
}

// Token reads a bearer token for this session. It is also written to the
// configured token file so later runs pick it up.
func (a *App) Token(_ context.Context, _ []string) error {
	token, err := GetSecret(a.scanner, "Enter bearer token", a.out)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("empty token")
	}

	// Opaque tokens are accepted as is; only a readable exp claim is checked.
	exp, err := tokens.ExpiresAt(token)
	switch {
	case err != nil:
		fmt.Fprintln(a.out, "Token set")
	case !exp.After(time.Now()):
		return fmt.Errorf("token expired at %s", exp.Format(time.RFC3339))
	default:
		fmt.Fprintf(a.out, "Token set, expires %s\n", exp.Format(time.RFC3339))
	}

	a.session.Set(token)
	if a.config.TokenFile != "" {
		return tokens.File{Path: a.config.TokenFile}.Save(token)
	}
	return nil
}
