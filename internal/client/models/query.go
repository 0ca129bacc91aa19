package models

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query holds list parameters. Zero values mean "absent".
type Query struct {
	Search    string
	Status    string
	Filters   map[string]string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

var reservedParams = map[string]struct{}{
	"search": {}, "status": {}, "page": {}, "limit": {}, "sort_by": {}, "sort_order": {},
}

// present reports whether a filter value should be applied. The admin UI
// sends "all" for an unset select box.
func present(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

// Values encodes only the parameters that are present.
func (q Query) Values() url.Values {
	v := url.Values{}
	if present(q.Search) {
		v.Set("search", strings.TrimSpace(q.Search))
	}
	if present(q.Status) {
		v.Set("status", q.Status)
	}
	for k, f := range q.Filters {
		if present(f) {
			v.Set(k, f)
		}
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sort_order", q.SortOrder)
	}
	return v
}

// Conditions returns the exact-match filters in effect, status included.
func (q Query) Conditions() map[string]string {
	out := make(map[string]string, len(q.Filters)+1)
	for k, f := range q.Filters {
		if present(f) {
			out[k] = f
		}
	}
	if present(q.Status) {
		out["status"] = q.Status
	}
	return out
}

// Term returns the lower-cased search term, empty when absent.
func (q Query) Term() string {
	if !present(q.Search) {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(q.Search))
}

// QueryFromValues parses list parameters from a URL query. Unknown keys
// become filters. Malformed page or limit values fall back to defaults.
func QueryFromValues(v url.Values) Query {
	q := Query{
		Search:    v.Get("search"),
		Status:    v.Get("status"),
		SortBy:    v.Get("sort_by"),
		SortOrder: v.Get("sort_order"),
	}
	if n, err := strconv.Atoi(v.Get("page")); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(v.Get("limit")); err == nil && n > 0 {
		q.Limit = n
	}
	for k := range v {
		if _, ok := reservedParams[k]; ok {
			continue
		}
		if q.Filters == nil {
			q.Filters = map[string]string{}
		}
		q.Filters[k] = v.Get(k)
	}
	return q
}
