// Package leaderboard keeps the ten best scores with three-letter names and
// persists them as a plain text file, one "NAME SCORE" record per line,
// best score first.
package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// NameLen is the exact number of characters in an entry name.
	NameLen = 3
	// MaxEntries is the leaderboard capacity.
	MaxEntries = 10
)

var (
	// ErrCorrupt is returned when a file's records are malformed or out of order.
	ErrCorrupt = errors.New("leaderboard: corrupt file")
	// ErrTooManyEntries is returned when a file holds more than MaxEntries records.
	ErrTooManyEntries = errors.New("leaderboard: too many entries")
	// ErrNoPlace is returned when adding a score that does not qualify.
	ErrNoPlace = errors.New("leaderboard: score does not qualify")
	// ErrInvalidName is returned for names that are not exactly NameLen characters.
	ErrInvalidName = errors.New("leaderboard: invalid name")
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string
	Score int
}

// Leaderboard is an ordered list of at most MaxEntries entries, highest score first.
// The zero value is an empty leaderboard.
type Leaderboard struct {
	entries []Entry
}

// New returns an empty leaderboard.
func New() *Leaderboard {
	return &Leaderboard{}
}

// Load parses a leaderboard from r.
func Load(r io.Reader) (*Leaderboard, error) {
	lb := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line > MaxEntries {
			return nil, ErrTooManyEntries
		}
		e, err := parseEntry(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if n := len(lb.entries); n > 0 && e.Score > lb.entries[n-1].Score {
			return nil, fmt.Errorf("line %d: scores not in descending order: %w", line, ErrCorrupt)
		}
		lb.entries = append(lb.entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot read: %w", err)
	}
	return lb, nil
}

// parseEntry splits a record at its last space, so names may contain blanks.
func parseEntry(line string) (Entry, error) {
	i := strings.LastIndexByte(line, ' ')
	if i < 0 {
		return Entry{}, fmt.Errorf("missing score: %w", ErrCorrupt)
	}
	name, rawScore := line[:i], line[i+1:]
	if err := validateName(name); err != nil {
		return Entry{}, err
	}
	score, err := strconv.Atoi(rawScore)
	if err != nil || score < 0 {
		return Entry{}, fmt.Errorf("invalid score %q: %w", rawScore, ErrCorrupt)
	}
	return Entry{Name: name, Score: score}, nil
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) != NameLen || strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("%w: %q must be %d characters", ErrInvalidName, name, NameLen)
	}
	return nil
}

// LoadFile reads a leaderboard from path.
func LoadFile(path string) (*Leaderboard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes the leaderboard to w in the format Load reads.
func (lb *Leaderboard) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range lb.entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Name, e.Score); err != nil {
			return fmt.Errorf("leaderboard: cannot write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("leaderboard: cannot write: %w", err)
	}
	return nil
}

// SaveFile writes the leaderboard to path, creating parent directories.
// The file is replaced atomically.
func (lb *Leaderboard) SaveFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := lb.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("leaderboard: cannot replace %s: %w", path, err)
	}
	return nil
}

// Place returns the rank a score would take: the number of entries with a
// strictly higher score, or the next free slot. ok is false when the
// leaderboard is full and the score does not beat any entry.
func (lb *Leaderboard) Place(score int) (rank int, ok bool) {
	for i, e := range lb.entries {
		if score > e.Score {
			return i, true
		}
	}
	if len(lb.entries) < MaxEntries {
		return len(lb.entries), true
	}
	return 0, false
}

// AddScore inserts an entry at its rank, dropping the last entry when the
// leaderboard overflows.
func (lb *Leaderboard) AddScore(name string, score int) error {
	if err := validateName(name); err != nil {
		return err
	}
	rank, ok := lb.Place(score)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoPlace, score)
	}
	lb.entries = append(lb.entries, Entry{})
	copy(lb.entries[rank+1:], lb.entries[rank:])
	lb.entries[rank] = Entry{Name: name, Score: score}
	if len(lb.entries) > MaxEntries {
		lb.entries = lb.entries[:MaxEntries]
	}
	return nil
}

// Entry returns the entry at rank i, or false when i is out of range.
func (lb *Leaderboard) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(lb.entries) {
		return Entry{}, false
	}
	return lb.entries[i], true
}

// Entries returns a copy of all entries, best first.
func (lb *Leaderboard) Entries() []Entry {
	return append([]Entry(nil), lb.entries...)
}

// Len returns the number of entries.
func (lb *Leaderboard) Len() int {
	return len(lb.entries)
}
