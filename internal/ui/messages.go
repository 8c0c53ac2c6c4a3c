package ui

import (
	"retaildash/internal/api"
	"retaildash/internal/domain"
)

// listLoadedMsg is sent when a page's list request completes. gen is the
// request token: completions whose token is not the page's latest are
// stale and dropped instead of overwriting newer state.
type listLoadedMsg[T any] struct {
	page string
	gen  int
	resp api.Response[[]T]
}

// savedMsg is sent when a create, update, or status change completes.
type savedMsg[T any] struct {
	page    string
	scope   string
	created bool
	resp    api.Response[T]
}

// deletedMsg is sent when a delete completes.
type deletedMsg struct {
	page  string
	scope string
	resp  api.Response[bool]
}

// summaryLoadedMsg is sent when the reports page's aggregates arrive.
type summaryLoadedMsg struct {
	gen  int
	resp api.Response[domain.Summary]
}
