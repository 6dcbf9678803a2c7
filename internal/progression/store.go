package progression

import "time"

// ProgressStore persists the best-stars record.
//
// Load must tolerate missing or unreadable data: it returns an empty record
// together with an error describing what was wrong, and the caller carries
// on with the empty record.
type ProgressStore interface {
	Load() (Record, error)
	Save(Record) error
}

// Run is one finished session, as kept in the run history.
type Run struct {
	ID        string
	Level     int
	Outcome   Outcome
	Stars     int
	Seconds   int
	Deaths    int
	Distance  float64 // Furthest x reached
	Player    string  // Empty for local play
	CreatedAt time.Time
}

// RunRecorder appends finished runs to a history.
type RunRecorder interface {
	SaveRun(Run) (string, error)
}

// MemoryStore is an in-process ProgressStore, used for tests and when no
// progress file is configured.
type MemoryStore struct {
	record Record
	saves  int
	err    error // Returned by Save when set
}

// NewMemoryStore creates a store holding r.
func NewMemoryStore(r Record) *MemoryStore {
	return &MemoryStore{record: r}
}

// Load returns a copy of the stored record.
func (m *MemoryStore) Load() (Record, error) {
	return NewRecord(m.record.Scores()), nil
}

// Save replaces the stored record, or fails with the configured error.
func (m *MemoryStore) Save(r Record) error {
	if m.err != nil {
		return m.err
	}
	m.record = NewRecord(r.Scores())
	m.saves++
	return nil
}

// FailWith makes every later Save return err.
func (m *MemoryStore) FailWith(err error) {
	m.err = err
}

// Saves returns how many saves succeeded.
func (m *MemoryStore) Saves() int {
	return m.saves
}
