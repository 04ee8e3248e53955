package venue

import (
	"log/slog"
	"strings"

	"github.com/tourline/merch-forecast/internal/domain/records"
)

// Matcher resolves inventory city names against a band's tour ledger
// rows. City naming is inconsistent between feeds ("Indianapolis, IN"
// vs "indianapolis"), so the lookup map is built under several derived
// keys and the lookup falls through a fixed cascade of strategies.
type Matcher struct {
	log    *slog.Logger
	keys   []string // insertion order, keeps the containment scan deterministic
	byCity map[string]venueInfo
}

type venueInfo struct {
	venue      string
	state      string
	attendance int
}

// Tokens of 3 characters or fewer ("st.", "las") over-match, so the
// first-word key is only added for longer tokens.
const minTokenKeyLen = 4

// NewMatcher indexes the ledger rows whose band equals the canonical
// name or its roster alias. For each row the city is keyed four ways:
// full string, pre-comma substring, first token (when long enough), and
// a second pass that aliases any remaining comma-bearing key by its
// pre-comma form. The first insertion for a key wins.
func NewMatcher(ledger []TourRecord, band string, log *slog.Logger) *Matcher {
	m := &Matcher{log: log, byCity: make(map[string]venueInfo)}

	alias := records.BandAlias(band)
	for _, r := range ledger {
		if r.Band != band && r.Band != alias {
			continue
		}
		city := strings.ToLower(strings.TrimSpace(r.City))
		if city == "" {
			continue
		}
		info := venueInfo{venue: r.Venue, state: r.State, attendance: r.Attendance}

		m.insert(city, info)
		if i := strings.Index(city, ","); i >= 0 {
			m.insert(strings.TrimSpace(city[:i]), info)
		}
		if tok, _, found := strings.Cut(city, " "); found && len(tok) >= minTokenKeyLen {
			m.insert(tok, info)
		}
	}

	// Second pass over the keys built so far: any comma-bearing key also
	// answers to its pre-comma form if that form is still free.
	for _, k := range append([]string(nil), m.keys...) {
		if i := strings.Index(k, ","); i >= 0 {
			m.insert(strings.TrimSpace(k[:i]), m.byCity[k])
		}
	}

	return m
}

func (m *Matcher) insert(key string, info venueInfo) {
	if key == "" {
		return
	}
	if _, ok := m.byCity[key]; ok {
		return
	}
	m.byCity[key] = info
	m.keys = append(m.keys, key)
}

// Size reports how many distinct city keys are indexed.
func (m *Matcher) Size() int { return len(m.keys) }

// Enrich returns a copy of rec with venue name, state and attendance
// filled from the ledger when the city resolves. Only fields still at
// their defaults are written. The second return value reports whether a
// ledger entry was found; a miss is warned exactly once here.
func (m *Matcher) Enrich(rec records.OutputRecord) (records.OutputRecord, bool) {
	info, ok := m.lookup(strings.ToLower(strings.TrimSpace(rec.VenueCity)))
	if !ok {
		m.log.Warn("no venue match for city", "city", rec.VenueCity, "band", rec.ArtistName)
		return rec, false
	}
	out := rec
	if out.VenueName == "" {
		out.VenueName = info.venue
	}
	if out.VenueState == "" {
		out.VenueState = info.state
	}
	if out.Attendance == 0 {
		out.Attendance = info.attendance
	}
	return out, true
}

// lookup tries the match strategies in fixed precedence order and stops
// at the first hit.
func (m *Matcher) lookup(city string) (venueInfo, bool) {
	if city == "" {
		return venueInfo{}, false
	}

	// 1. Exact city string.
	if info, ok := m.byCity[city]; ok {
		return info, true
	}

	// 2. Pre-comma substring, for cities carrying their state inline.
	if i := strings.Index(city, ","); i >= 0 {
		if info, ok := m.byCity[strings.TrimSpace(city[:i])]; ok {
			return info, true
		}
		return venueInfo{}, false
	}

	// 3. Containment scan in key insertion order, either direction.
	for _, k := range m.keys {
		if strings.Contains(city, k) || strings.Contains(k, city) {
			return m.byCity[k], true
		}
	}
	return venueInfo{}, false
}
