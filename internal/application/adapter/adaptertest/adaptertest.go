// Package adaptertest provides in-memory implementations of the adapter ports
// for use case tests.
package adaptertest

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// RecordRepository is an in-memory adapter.RecordRepository.
type RecordRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.Record

	// Err, when set, is returned by every method.
	Err error
	// Calls counts FindByUser invocations.
	Calls int
	// Gate, when set, holds FindByUser until it is closed or ctx is done.
	Gate chan struct{}
	// Entered, when set, receives a value each time FindByUser starts.
	Entered chan struct{}
}

// NewRecordRepository returns a repository seeded with records.
func NewRecordRepository(records ...*entity.Record) *RecordRepository {
	r := &RecordRepository{records: make(map[uuid.UUID]*entity.Record)}
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
	return r
}

func (r *RecordRepository) Create(_ context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.records[record.ID] = record
	return nil
}

func (r *RecordRepository) FindByID(_ context.Context, userID string, id uuid.UUID) (*entity.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return nil, domainerror.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *RecordRepository) FindByUser(ctx context.Context, userID string, filter adapter.RecordFilter) ([]*entity.Record, error) {
	if r.Entered != nil {
		r.Entered <- struct{}{}
	}
	if r.Gate != nil {
		select {
		case <-r.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.Record, 0)
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if filter.Currency != "" && rec.Currency != filter.Currency {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *RecordRepository) Update(_ context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.records[record.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *RecordRepository) Delete(_ context.Context, userID string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return domainerror.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

// Len returns the number of stored records.
func (r *RecordRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// BudgetRepository is an in-memory adapter.BudgetRepository.
type BudgetRepository struct {
	mu      sync.Mutex
	budgets []*entity.Budget

	Err error
}

// NewBudgetRepository returns a repository seeded with budgets.
func NewBudgetRepository(budgets ...*entity.Budget) *BudgetRepository {
	return &BudgetRepository{budgets: append([]*entity.Budget(nil), budgets...)}
}

func (r *BudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *BudgetRepository) FindByID(_ context.Context, userID string, id uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, b := range r.budgets {
		if b.ID == id && b.UserID == userID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *BudgetRepository) FindByUser(_ context.Context, userID string, filter adapter.BudgetFilter) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.Budget, 0)
	for _, b := range r.budgets {
		if b.UserID != userID {
			continue
		}
		if filter.Currency != "" && b.Currency != filter.Currency {
			continue
		}
		if filter.Month != 0 && b.Month != filter.Month {
			continue
		}
		if filter.Year != 0 && b.Year != filter.Year {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BudgetRepository) FindByKey(_ context.Context, key adapter.BudgetKey) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, b := range r.budgets {
		if b.UserID == key.UserID &&
			strings.ToLower(strings.TrimSpace(b.Category)) == key.Category &&
			b.Month == key.Month &&
			b.Year == key.Year &&
			b.Currency == key.Currency {
			return b, nil
		}
	}
	return nil, nil
}

func (r *BudgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, b := range r.budgets {
		if b.ID == budget.ID {
			r.budgets[i] = budget
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *BudgetRepository) Delete(_ context.Context, userID string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, b := range r.budgets {
		if b.ID == id && b.UserID == userID {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

// Len returns the number of stored budgets.
func (r *BudgetRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.budgets)
}

// Cache is an in-memory adapter.InsightCache. Values round-trip through JSON
// the way a remote cache would store them.
type Cache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	Invalidated []string
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) Get(_ context.Context, userID, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[userID+":"+key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *Cache) Set(_ context.Context, userID, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID+":"+key] = data
	return nil
}

func (c *Cache) InvalidateUser(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, userID+":") {
			delete(c.entries, k)
		}
	}
	c.Invalidated = append(c.Invalidated, userID)
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clock is a fixed adapter.Clock.
type Clock struct {
	At time.Time
}

func (c Clock) Now() time.Time {
	return c.At
}
