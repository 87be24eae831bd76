// Package memo keeps the remote-backed memo state for the active week.
// Unlike the document-backed managers, every load and mutation goes over
// the network; failures are soft and leave local state untouched.
package memo

import (
	"context"
	"strings"
	"sync"

	"weeklog/internal/api"
	"weeklog/internal/constants"
	"weeklog/internal/logger"
	"weeklog/internal/validation"
	"weeklog/internal/weekkey"
)

// Entry is one memo as held locally, grouped under its calendar date.
type Entry struct {
	ID        string
	Text      string
	CreatedAt string
}

// Store caches the current week's memos. A week change may fire a fetch
// whose response lands after a later week change; responses are tagged
// with the week they were issued for and dropped when the tag no longer
// matches the current week.
type Store struct {
	api api.MemoAPI

	mu          sync.Mutex
	currentWeek weekkey.Key
	memosByDate map[string][]Entry
}

func NewStore(client api.MemoAPI, week weekkey.Key) *Store {
	return &Store{
		api:         client,
		currentWeek: week,
		memosByDate: map[string][]Entry{},
	}
}

// LoadWeekData switches the store to the given week and fetches its memos.
// The old week's memos are dropped immediately so the store never shows
// data for a week it is not on; the fetch fills in the new week when (and
// only when) it is still the current one on completion.
func (s *Store) LoadWeekData(ctx context.Context, key weekkey.Key) error {
	s.mu.Lock()
	s.currentWeek = key
	s.memosByDate = map[string][]Entry{}
	s.mu.Unlock()

	start, end := key.Range()
	memos, err := s.api.ListMemos(ctx,
		start.Format(constants.DateFormat), end.Format(constants.DateFormat))
	if err != nil {
		logger.Warn("memo fetch failed", "week", key, "error", err)
		return err
	}

	grouped := map[string][]Entry{}
	for _, m := range memos {
		date := normalizeDate(m.Date)
		grouped[date] = append(grouped[date], Entry{ID: m.ID, Text: m.Text, CreatedAt: m.CreatedAt})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentWeek != key {
		logger.Debug("discarding stale memo response", "fetched", key, "current", s.currentWeek)
		return nil
	}
	s.memosByDate = grouped
	return nil
}

// SetWeek synchronously switches the store to the given week and drops the
// cached memos. Week navigation subscribes this so the store never holds
// another week's data after a transition returns; the fetch that fills the
// new week runs separately through LoadWeekData.
func (s *Store) SetWeek(key weekkey.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentWeek = key
	s.memosByDate = map[string][]Entry{}
}

// CurrentWeek returns the week the store is on.
func (s *Store) CurrentWeek() weekkey.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentWeek
}

// Memos returns the entries for one date in server order.
func (s *Store) Memos(date string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.memosByDate[date]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Count returns how many memos are held for the current week.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, entries := range s.memosByDate {
		n += len(entries)
	}
	return n
}

// Add creates a memo on the server and mirrors it locally on success.
// Blank text is rejected before any network call.
func (s *Store) Add(ctx context.Context, date, text string) (Entry, error) {
	text, err := validation.MemoText(text)
	if err != nil {
		return Entry{}, err
	}
	if _, err := weekkey.ParseDate(date); err != nil {
		return Entry{}, err
	}

	created, err := s.api.CreateMemo(ctx, date, text)
	if err != nil {
		logger.Warn("memo create failed", "date", date, "error", err)
		return Entry{}, err
	}

	entry := Entry{ID: created.ID, Text: created.Text, CreatedAt: created.CreatedAt}
	key, _ := weekkey.Parse(date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentWeek == key {
		s.memosByDate[normalizeDate(created.Date)] = append(s.memosByDate[normalizeDate(created.Date)], entry)
	}
	return entry, nil
}

// Delete removes a memo on the server, then locally. A 404 or network
// failure leaves the local copy in place.
func (s *Store) Delete(ctx context.Context, date, id string) error {
	if err := s.api.DeleteMemo(ctx, id); err != nil {
		logger.Warn("memo delete failed", "id", id, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.memosByDate[date]
	for i, e := range entries {
		if e.ID == id {
			s.memosByDate[date] = append(entries[:i], entries[i+1:]...)
			if len(s.memosByDate[date]) == 0 {
				delete(s.memosByDate, date)
			}
			break
		}
	}
	return nil
}

// normalizeDate strips any time-of-day component the server attaches,
// leaving a plain YYYY-MM-DD.
func normalizeDate(date string) string {
	if i := strings.IndexAny(date, "T "); i != -1 {
		date = date[:i]
	}
	return date
}
