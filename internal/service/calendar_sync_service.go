package service

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"vincanto/internal/db"
	"vincanto/internal/entities"
	apperrors "vincanto/internal/errors"
	"vincanto/internal/repository"
)

const (
	syncStatusActive = "active"
	syncStatusError  = "error"

	// Synced blocks whose stay ended this long ago are purged.
	syncedBlockRetention = 30 * 24 * time.Hour
)

var knownPlatforms = map[string]bool{
	"airbnb":  true,
	"booking": true,
	"google":  true,
	"other":   true,
}

// CalendarSyncService imports external iCal feeds (Airbnb, Booking.com,
// Google Calendar) as blocked dates, so the house cannot be double-booked
// across platforms.
type CalendarSyncService struct {
	calendarRepo *repository.CalendarRepository
	blockedRepo  *repository.BlockedDateRepository
	bookingRepo  *repository.BookingRepository
	client       *http.Client
}

func NewCalendarSyncService(calendarRepo *repository.CalendarRepository,
	blockedRepo *repository.BlockedDateRepository, bookingRepo *repository.BookingRepository) *CalendarSyncService {
	return &CalendarSyncService{
		calendarRepo: calendarRepo,
		blockedRepo:  blockedRepo,
		bookingRepo:  bookingRepo,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *CalendarSyncService) ListFeeds() (*entities.CalendarFeedList, error) {
	feeds, err := s.calendarRepo.List()
	if err != nil {
		return nil, err
	}
	list := &entities.CalendarFeedList{
		Success:   true,
		Calendars: make([]entities.CalendarFeedResponse, 0, len(feeds)),
		Total:     len(feeds),
	}
	for _, f := range feeds {
		if f.Active {
			list.Active++
		}
		list.Calendars = append(list.Calendars, toCalendarFeedResponse(f))
	}
	return list, nil
}

func (s *CalendarSyncService) CreateFeed(req entities.CalendarFeedRequest) (*entities.CalendarFeedResponse, error) {
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if !knownPlatforms[platform] {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown platform")
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "url must be an http(s) iCal feed")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = platform
	}

	feed := &db.CalendarFeed{
		Name:     name,
		Platform: platform,
		URL:      req.URL,
		Active:   req.Active == nil || *req.Active,
	}
	if err := s.calendarRepo.Create(feed); err != nil {
		return nil, err
	}
	resp := toCalendarFeedResponse(*feed)
	return &resp, nil
}

func (s *CalendarSyncService) UpdateFeed(id int, req entities.CalendarFeedRequest) (*entities.CalendarFeedResponse, error) {
	if req.Platform != "" && !knownPlatforms[strings.ToLower(req.Platform)] {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "unknown platform")
	}
	feed, err := s.calendarRepo.Update(id, req)
	if err != nil {
		return nil, err
	}
	resp := toCalendarFeedResponse(*feed)
	return &resp, nil
}

func (s *CalendarSyncService) DeleteFeed(id int) error {
	return s.calendarRepo.Delete(id)
}

// SyncAll refreshes every active feed. Feed failures are recorded on the
// feed row and do not stop the run.
func (s *CalendarSyncService) SyncAll() ([]entities.SyncResult, error) {
	feeds, err := s.calendarRepo.ListActive()
	if err != nil {
		return nil, err
	}
	results := make([]entities.SyncResult, 0, len(feeds))
	for _, feed := range feeds {
		results = append(results, s.SyncFeed(feed))
	}
	return results, nil
}

// SyncPlatform refreshes a single feed by platform name.
func (s *CalendarSyncService) SyncPlatform(platform string) (*entities.SyncResult, error) {
	feed, err := s.calendarRepo.GetByPlatform(strings.ToLower(platform))
	if err != nil {
		return nil, err
	}
	result := s.SyncFeed(*feed)
	return &result, nil
}

// SyncFeed downloads one iCal feed and imports its blocking events.
func (s *CalendarSyncService) SyncFeed(feed db.CalendarFeed) entities.SyncResult {
	result := entities.SyncResult{
		Platform: feed.Platform,
		SyncedAt: time.Now().UTC().Format(time.RFC3339),
	}

	cal, err := s.fetchCalendar(feed.URL)
	if err != nil {
		log.Printf("Calendar sync: feed %s failed: %v", feed.Platform, err)
		result.ErrorDetail = err.Error()
		s.recordSync(feed.ID, syncStatusError, err.Error())
		return result
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, ev := range cal.Events() {
		result.EventsSeen++

		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil || !end.After(start) {
			continue
		}
		if end.Before(today) {
			continue
		}

		summary := propertyValue(ev, ics.ComponentPropertySummary)
		if !isBlockingEvent(feed.Platform, summary, propertyValue(ev, ics.ComponentPropertyDescription)) {
			continue
		}

		uid := ev.Id()
		if uid != "" {
			exists, err := s.blockedRepo.ExistsExternalUID(uid)
			if err != nil {
				log.Printf("Calendar sync: uid lookup failed for %s: %v", feed.Platform, err)
				continue
			}
			if exists {
				continue
			}
		}

		// Never shadow a real stay: overlapping guest bookings win.
		overlapping, err := s.bookingRepo.FindOverlapping(start, end)
		if err != nil {
			log.Printf("Calendar sync: overlap check failed for %s: %v", feed.Platform, err)
			continue
		}
		if len(overlapping) > 0 {
			log.Printf("Calendar sync: skipping %s event %s, conflicts with booking %s",
				feed.Platform, uid, overlapping[0].ReferenceCode)
			continue
		}

		reason := summary
		if reason == "" {
			reason = fmt.Sprintf("Imported from %s", feed.Platform)
		}
		bd := &db.BlockedDate{
			StartDate:   start,
			EndDate:     end,
			Reason:      reason,
			CreatedBy:   "sync_" + feed.Platform,
			ExternalUID: toNullString(uid),
		}
		if err := s.blockedRepo.Create(bd); err != nil {
			log.Printf("Calendar sync: could not store block from %s: %v", feed.Platform, err)
			continue
		}
		result.DatesAdded++
	}

	result.Success = true
	s.recordSync(feed.ID, syncStatusActive, "")
	log.Printf("Calendar sync: %s done, %d events seen, %d dates added",
		feed.Platform, result.EventsSeen, result.DatesAdded)
	return result
}

// CleanupExpired drops synced blocks that ended long enough ago.
func (s *CalendarSyncService) CleanupExpired() (int64, error) {
	cutoff := time.Now().UTC().Add(-syncedBlockRetention)
	return s.blockedRepo.DeleteExpiredSynced(cutoff)
}

func (s *CalendarSyncService) fetchCalendar(url string) (*ics.Calendar, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("User-Agent", "Vincanto-Calendar-Sync/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	cal, err := ics.ParseCalendar(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return cal, nil
}

func (s *CalendarSyncService) recordSync(feedID int, status, errorMessage string) {
	if err := s.calendarRepo.MarkSyncResult(feedID, status, errorMessage); err != nil {
		log.Printf("Calendar sync: could not record sync result: %v", err)
	}
}

// isBlockingEvent decides whether a feed event makes the dates unavailable.
// Booking.com feeds only export unavailable periods, Airbnb mixes stays with
// "Not available" filler, Google calendars need a keyword match.
func isBlockingEvent(platform, summary, description string) bool {
	text := strings.ToLower(summary + " " + description)
	switch platform {
	case "booking":
		return true
	case "airbnb":
		return strings.Contains(text, "reserved") || strings.Contains(text, "booked")
	default:
		for _, keyword := range []string{"booked", "booking", "reserved", "blocked", "unavailable", "occupied"} {
			if strings.Contains(text, keyword) {
				return true
			}
		}
		return false
	}
}

func propertyValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}

func toCalendarFeedResponse(f db.CalendarFeed) entities.CalendarFeedResponse {
	resp := entities.CalendarFeedResponse{
		ID:         f.ID,
		Name:       f.Name,
		Platform:   f.Platform,
		URL:        f.URL,
		Active:     f.Active,
		SyncStatus: f.SyncStatus,
		CreatedAt:  f.CreatedAt,
	}
	if f.LastSync.Valid {
		t := f.LastSync.Time
		resp.LastSync = &t
	}
	if f.ErrorMessage.Valid {
		resp.ErrorMessage = f.ErrorMessage.String
	}
	return resp
}
