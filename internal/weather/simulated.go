// Package weather loads recorded weather samples used instead of a live provider.
package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/constants"
	"github.com/weatherrecap/weatherrecap/internal/storage"
)

var ErrNoDataFiles = errors.New("no weather data files")

// Entry is one weather sample kept verbatim so unknown fields survive.
type Entry = json.RawMessage

type sortKey struct {
	Date      *string  `json:"date"`
	Timestamp *float64 `json:"timestamp"`
}

// LoadSimulated reads every JSON array file in dir, concatenates the
// entries and sorts them ascending by date or timestamp.
func LoadSimulated(dir string) ([]Entry, error) {
	files, err := storage.ListFilesWithExt(dir, constants.WeatherDataExtension)
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, ErrNoDataFiles
		}
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoDataFiles
	}

	entries := []Entry{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var batch []Entry
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		entries = append(entries, batch...)
	}

	SortEntries(entries)
	return entries, nil
}

// SortEntries orders entries by their timestamp. Entries without a usable
// date or timestamp keep their relative order after all dated entries.
func SortEntries(entries []Entry) {
	keys := make([]time.Time, len(entries))
	known := make([]bool, len(entries))
	for i, e := range entries {
		keys[i], known[i] = EntryTime(e)
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if known[ia] != known[ib] {
			return known[ia]
		}
		return keys[ia].Before(keys[ib])
	})

	sorted := make([]Entry, len(entries))
	for i, j := range idx {
		sorted[i] = entries[j]
	}
	copy(entries, sorted)
}

// EntryTime extracts the sample time from date (RFC 3339 or YYYY-MM-DD),
// falling back to timestamp in unix seconds.
func EntryTime(e Entry) (time.Time, bool) {
	var k sortKey
	if err := json.Unmarshal(e, &k); err != nil {
		return time.Time{}, false
	}

	if k.Date != nil && strings.TrimSpace(*k.Date) != "" {
		d := strings.TrimSpace(*k.Date)
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	}
	if k.Timestamp != nil {
		sec := int64(*k.Timestamp)
		return time.Unix(sec, 0).UTC(), true
	}
	return time.Time{}, false
}
