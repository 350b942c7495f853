package events

import (
	"context"
	"embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

//go:embed catalog.json
var catalogFS embed.FS

const DefaultCatalogTTL = 15 * time.Minute

// Catalog is the static event list shipped with the binary. The parsed form
// is memoized with a TTL so edits picked up by a redeploy behave the same as
// a cache miss: expiry is checked at read time, a miss just re-parses.
type Catalog struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	events   []Event
	byID     map[string]Event
	loadedAt time.Time
}

var _ Repository = (*Catalog)(nil)

func NewCatalog(ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &Catalog{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *Catalog) GetEvent(ctx context.Context, id string) (Event, error) {
	byID, _, err := c.snapshot()
	if err != nil {
		return Event{}, err
	}

	event, ok := byID[id]
	if !ok {
		return Event{}, NewEventDoesNotExistError(fmt.Sprintf("No event in the catalog with ID %q", id), nil)
	}
	return event, nil
}

func (c *Catalog) GetEvents(ctx context.Context, fest *Fest, limit int32, cursor *string) (GetEventsResponse, error) {
	_, all, err := c.snapshot()
	if err != nil {
		return GetEventsResponse{}, err
	}

	filtered := all
	if fest != nil {
		filtered = nil
		for _, e := range all {
			if e.Fest == *fest {
				filtered = append(filtered, e)
			}
		}
	}

	offset := 0
	if cursor != nil {
		offset, err = decodeCursor(*cursor)
		if err != nil {
			return GetEventsResponse{}, err
		}
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}

	end := offset + int(limit)
	if end > len(filtered) {
		end = len(filtered)
	}

	resp := GetEventsResponse{
		Data:        filtered[offset:end],
		HasNextPage: end < len(filtered),
	}
	if resp.HasNextPage {
		next := encodeCursor(end)
		resp.Cursor = &next
	}
	return resp, nil
}

func (c *Catalog) snapshot() (map[string]Event, []Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.events == nil || c.now().Sub(c.loadedAt) > c.ttl {
		events, err := parseCatalog()
		if err != nil {
			return nil, nil, NewCatalogUnavailableError("Failed to parse the embedded event catalog", err)
		}

		byID := make(map[string]Event, len(events))
		for _, e := range events {
			byID[e.ID] = e
		}

		c.events = events
		c.byID = byID
		c.loadedAt = c.now()
	}

	return c.byID, c.events, nil
}

type catalogEvent struct {
	ID          string `json:"id"`
	Fest        string `json:"fest"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	TeamSize    struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"teamSize"`
	Schedule struct {
		Date  string `json:"date"`
		Time  string `json:"time"`
		Venue string `json:"venue"`
	} `json:"schedule"`
	Prizes            []string `json:"prizes"`
	WhatsAppGroupLink string   `json:"whatsappGroupLink"`
	Status            string   `json:"registrationStatus"`
	Coordinators      []struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"coordinators"`
}

func parseCatalog() ([]Event, error) {
	raw, err := catalogFS.ReadFile("catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []catalogEvent
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}

	events := make([]Event, 0, len(entries))
	for _, entry := range entries {
		if entry.TeamSize.Min > entry.TeamSize.Max {
			return nil, fmt.Errorf("event %q has team size min %d > max %d", entry.ID, entry.TeamSize.Min, entry.TeamSize.Max)
		}

		e := Event{
			ID:          entry.ID,
			Fest:        Fest(entry.Fest),
			Name:        entry.Name,
			Tagline:     entry.Tagline,
			Description: entry.Description,
			TeamSize: Range{
				Min: entry.TeamSize.Min,
				Max: entry.TeamSize.Max,
			},
			Schedule: Schedule{
				Date:  entry.Schedule.Date,
				Time:  entry.Schedule.Time,
				Venue: entry.Schedule.Venue,
			},
			Prizes:             entry.Prizes,
			WhatsAppGroupLink:  entry.WhatsAppGroupLink,
			RegistrationStatus: RegistrationStatus(entry.Status),
		}
		for _, co := range entry.Coordinators {
			e.Coordinators = append(e.Coordinators, Coordinator{Name: co.Name, Phone: co.Phone})
		}
		events = append(events, e)
	}
	return events, nil
}

func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, NewInvalidCursorError("Cursor is not valid base64", err)
	}

	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, NewInvalidCursorError("Cursor does not decode to an offset", err)
	}
	return offset, nil
}
