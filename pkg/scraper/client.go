package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const baseURL = "https://my.gwu.edu/mod/pws"

// Semester codes used by the GWU schedule site inside termId values.
const (
	SemesterSpring = "01"
	SemesterSummer = "06"
	SemesterFall   = "08"
)

// SemesterCode maps a semester name like "spring" to the portal's termId code.
func SemesterCode(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return SemesterSpring, nil
	case "summer":
		return SemesterSummer, nil
	case "fall":
		return SemesterFall, nil
	}
	return "", fmt.Errorf("unknown semester %q (expected spring, summer, or fall)", name)
}

// TermID builds the portal's termId value, e.g. 2026 + "01" -> "202601".
func TermID(year int, semesterCode string) string {
	return fmt.Sprintf("%d%s", year, semesterCode)
}

// CourseListURL returns the course listing URL for a term and subject code.
func CourseListURL(termID, subject string) string {
	return fmt.Sprintf("%s/courses.cfm?campId=1&termId=%s&subjId=%s", baseURL, termID, strings.ToUpper(subject))
}

// Client handles HTTP requests to the GWU schedule website
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new scraper client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get fetches the given URL and returns the HTTP response
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	// The portal blocks default Go user agents
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}
