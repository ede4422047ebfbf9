package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

// cacheDuration determines how long scraped course data is kept before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Courses   []schedule.Record `json:"courses"`
}

func getCachePath(termID, subject string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".gwucal_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", termID, strings.ToUpper(subject))
	return filepath.Join(cacheDir, name), nil
}

// readCache checks if a valid, unexpired cache exists for this term and subject
func readCache(termID, subject string) ([]schedule.Record, bool) {
	path, err := getCachePath(termID, subject)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false // Expired
	}

	return entry.Courses, true
}

// writeCache saves the scraped courses to disk
func writeCache(termID, subject string, courses []schedule.Record) {
	path, err := getCachePath(termID, subject)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Courses:   courses,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}

// FetchCourses downloads and parses the course listing for a term and
// subject, consulting the local disk cache first.
func (c *Client) FetchCourses(termID, subject string) ([]schedule.Record, error) {
	if cached, ok := readCache(termID, subject); ok {
		return cached, nil
	}

	resp, err := c.Get(CourseListURL(termID, subject))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	records, err := ParseCourses(resp.Body)
	if err != nil {
		return nil, err
	}

	writeCache(termID, subject, records)
	return records, nil
}
