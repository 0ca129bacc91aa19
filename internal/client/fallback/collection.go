package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

// record is satisfied by pointers to the model types.
type record[T any] interface {
	*T
	models.Entity
}

// Collection is the ordered, mutex-guarded record slice behind a store.
// IDs come from a counter that starts above the largest seeded ID and is
// never decremented.
type Collection[T any, P record[T]] struct {
	mu       sync.Mutex
	resource string
	label    string
	seed     func() []T
	items    []T
	nextID   int64
	seeded   bool
	now      func() time.Time
	mirror   Mirror
	log      logging.Logger
}

func newCollection[T any, P record[T]](resource, label string, seed []T, s settings) *Collection[T, P] {
	snapshot := detachedAll(seed)
	return &Collection[T, P]{
		resource: resource,
		label:    label,
		seed:     func() []T { return detachedAll(snapshot) },
		now:      s.now,
		mirror:   s.mirrorFor(resource),
		log:      s.log.With("component", "fallback", "resource", resource),
	}
}

// Reset discards the in-memory state. The next operation seeds again.
func (c *Collection[T, P]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.nextID = 0
	c.seeded = false
}

// ensure seeds the collection once. The caller holds c.mu.
func (c *Collection[T, P]) ensure(ctx context.Context) {
	if c.seeded {
		return
	}
	c.seeded = true

	if c.mirror != nil && c.restore(ctx) {
		return
	}
	c.items = c.seed()
	c.nextID = c.maxID() + 1
}

func (c *Collection[T, P]) maxID() int64 {
	var m int64
	for i := range c.items {
		if id := P(&c.items[i]).RecordID(); id > m {
			m = id
		}
	}
	return m
}

func (c *Collection[T, P]) restore(ctx context.Context) bool {
	snap, err := c.mirror.Load(ctx, c.resource)
	if err != nil {
		c.log.Warn(ctx, "mirror load failed, using seed data", "error", err)
		return false
	}
	if snap == nil {
		return false
	}

	items := make([]T, 0, len(snap.Records))
	for _, r := range snap.Records {
		var v T
		if err := json.Unmarshal(r.Body, &v); err != nil {
			c.log.Warn(ctx, "mirror snapshot corrupt, using seed data", "id", r.ID, "error", err)
			return false
		}
		items = append(items, v)
	}
	c.items = items
	c.nextID = max(snap.NextID, c.maxID()+1)
	c.log.Info(ctx, "restored from mirror", "records", len(items))
	return true
}

// persist writes the collection to the mirror. The caller holds c.mu.
func (c *Collection[T, P]) persist(ctx context.Context) {
	if c.mirror == nil {
		return
	}
	snap := Snapshot{NextID: c.nextID, Records: make([]SnapshotRecord, 0, len(c.items))}
	for i := range c.items {
		body, err := json.Marshal(&c.items[i])
		if err != nil {
			c.log.Warn(ctx, "mirror encode failed", "error", err)
			return
		}
		snap.Records = append(snap.Records, SnapshotRecord{ID: P(&c.items[i]).RecordID(), Body: body})
	}
	if err := c.mirror.Save(context.WithoutCancel(ctx), c.resource, snap); err != nil {
		c.log.Warn(ctx, "mirror save failed", "error", err)
	}
}

func (c *Collection[T, P]) indexOf(id int64) int {
	for i := range c.items {
		if P(&c.items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T, P]) notFound() error {
	return fmt.Errorf("%s %w", c.label, ErrNotFound)
}

func (c *Collection[T, P]) labelTitle() string {
	return strings.ToUpper(c.label[:1]) + c.label[1:]
}

// all returns a copy of every record in collection order.
func (c *Collection[T, P]) all(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)
	return detachedAll(c.items)
}

func (c *Collection[T, P]) list(ctx context.Context, q models.Query, stats func([]T) models.Stats) *models.Envelope[[]T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)

	term := q.Term()
	conds := q.Conditions()

	filtered := make([]T, 0, len(c.items))
	for i := range c.items {
		p := P(&c.items[i])
		if term != "" && !matchesTerm(p.SearchText(), term) {
			continue
		}
		if !matchesConditions(p, conds) {
			continue
		}
		filtered = append(filtered, c.items[i])
	}
	sortRecords[T, P](filtered, q.SortBy, q.SortOrder)

	pg := models.NewPagination(q.Page, q.Limit, len(filtered))
	start, end := pg.Bounds(len(filtered))

	return &models.Envelope[[]T]{
		Success:    true,
		Message:    fmt.Sprintf("%s list retrieved successfully", c.labelTitle()),
		Data:       detachedAll(filtered[start:end]),
		Pagination: &pg,
		Stats:      stats(c.items),
	}
}

func (c *Collection[T, P]) get(ctx context.Context, id int64) *models.Envelope[*T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)

	i := c.indexOf(id)
	if i < 0 {
		return failure[*T](c.notFound())
	}
	out := detached(c.items[i])
	return &models.Envelope[*T]{Success: true, Message: c.labelTitle() + " retrieved successfully", Data: &out}
}

// create assigns the next ID, stamps both timestamps and prepends rec.
// prepare may validate rec and adjust other records; it runs before any
// change is made.
func (c *Collection[T, P]) create(ctx context.Context, rec T, prepare func(items []T, rec P, now time.Time) error) *models.Envelope[*T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)

	now := c.now()
	p := P(&rec)
	if prepare != nil {
		if err := prepare(c.items, p, now); err != nil {
			return failure[*T](err)
		}
	}
	p.SetRecordID(c.nextID)
	c.nextID++
	p.Touch(now, true)

	c.items = append([]T{rec}, c.items...)
	c.persist(ctx)

	out := detached(rec)
	return &models.Envelope[*T]{Success: true, Message: c.labelTitle() + " created successfully", Data: &out}
}

// update runs fn on the stored record and refreshes updated_at. fn must
// return an error before changing anything when the update is rejected.
func (c *Collection[T, P]) update(ctx context.Context, id int64, msg string, fn func(items []T, rec P, now time.Time) error) *models.Envelope[*T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)

	i := c.indexOf(id)
	if i < 0 {
		return failure[*T](c.notFound())
	}

	now := c.now()
	p := P(&c.items[i])
	if err := fn(c.items, p, now); err != nil {
		return failure[*T](err)
	}
	p.Touch(now, false)
	c.persist(ctx)

	if msg == "" {
		msg = c.labelTitle() + " updated successfully"
	}
	out := detached(c.items[i])
	return &models.Envelope[*T]{Success: true, Message: msg, Data: &out}
}

// deleteMode tells remove what a guard decided.
type deleteMode int

const (
	removeRecord deleteMode = iota
	keepRecord
)

// remove deletes the record unless guard rejects the deletion or downgrades
// it to a soft delete by returning keepRecord. after runs once the record is
// gone.
func (c *Collection[T, P]) remove(ctx context.Context, id int64, guard func(items []T, rec P) (deleteMode, error), after func(items []T, removed T, now time.Time)) *models.Envelope[*T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(ctx)

	i := c.indexOf(id)
	if i < 0 {
		return failure[*T](c.notFound())
	}

	now := c.now()
	p := P(&c.items[i])
	mode := removeRecord
	if guard != nil {
		var err error
		if mode, err = guard(c.items, p); err != nil {
			return failure[*T](err)
		}
	}

	if mode == keepRecord {
		p.Touch(now, false)
		c.persist(ctx)
		out := detached(c.items[i])
		return &models.Envelope[*T]{
			Success: true,
			Message: c.labelTitle() + " is still in use and was deactivated instead of deleted",
			Data:    &out,
		}
	}

	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	if after != nil {
		after(c.items, removed, now)
	}
	c.persist(ctx)

	return &models.Envelope[*T]{Success: true, Message: c.labelTitle() + " deleted successfully"}
}

func matchesTerm(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesConditions applies exact-match filters. Attributes the record does
// not know are ignored, as the backend ignores unknown parameters.
func matchesConditions(e models.Entity, conds map[string]string) bool {
	for k, want := range conds {
		got, ok := e.Field(k)
		if !ok {
			continue
		}
		if !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}

func sortRecords[T any, P record[T]](items []T, by, order string) {
	if by == "" {
		return
	}
	desc := strings.EqualFold(order, models.SortDesc)
	sort.SliceStable(items, func(i, j int) bool {
		a, _ := P(&items[i]).Field(by)
		b, _ := P(&items[j]).Field(by)
		if desc {
			return compareValues(a, b) > 0
		}
		return compareValues(a, b) < 0
	})
}

// compareValues orders integers and decimals numerically and everything
// else case-insensitively.
func compareValues(a, b string) int {
	if x, err := strconv.ParseInt(a, 10, 64); err == nil {
		if y, err := strconv.ParseInt(b, 10, 64); err == nil {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	if x, err := strconv.ParseFloat(a, 64); err == nil {
		if y, err := strconv.ParseFloat(b, 64); err == nil {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// detached returns v with its pointer fields copied.
func detached[T any](v T) T {
	if d, ok := any(&v).(models.Detacher); ok {
		d.Detach()
	}
	return v
}

func detachedAll[T any](items []T) []T {
	out := make([]T, len(items))
	for i := range items {
		out[i] = detached(items[i])
	}
	return out
}

func count[T any](items []T, pred func(*T) bool) int {
	n := 0
	for i := range items {
		if pred(&items[i]) {
			n++
		}
	}
	return n
}
