package utils

import (
	"encoding/json"
	"strings"
	"time"

	"travelplans/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CalculateAge returns an age in years, months and days for a date of
// birth.
func CalculateAge(dob time.Time) (int, int, int) {
	currentTime := time.Now()

	years := currentTime.Year() - dob.Year()
	months := int(currentTime.Month()) - int(dob.Month())
	days := currentTime.Day() - dob.Day()

	// Adjust for negative months (if birthday hasn't occurred this year)
	if months < 0 {
		years--
		months += 12
	}

	// Adjust for negative days (if birthday day hasn't occurred this month)
	if days < 0 {
		previousMonth := now.With(currentTime).BeginningOfMonth().AddDate(0, 0, -1)
		days += previousMonth.Day()
		months--
	}

	return years, months, days
}

// AgeInYears returns the age in whole years for a YYYY-MM-DD date string,
// or -1 when the date does not parse.
func AgeInYears(dob string) int {
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return -1
	}
	years, _, _ := CalculateAge(parsed)
	return years
}

// CreateSanitizedLogEntry creates a deep copied audit entry for the
// request. Deep copies matter here: fasthttp reuses its buffers after the
// handler returns, and the entry outlives the request inside the async
// logger.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

// sanitizeRequestBody copies the request body with credential fields
// redacted so passwords never reach the audit sink.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := append([]byte(nil), c.Body()...)
	if len(body) == 0 {
		return ""
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	for key := range parsed {
		if strings.Contains(strings.ToLower(key), "password") {
			parsed[key] = "[REDACTED]"
		}
	}
	sanitized, err := json.Marshal(parsed)
	if err != nil {
		return string(body)
	}
	return string(sanitized)
}
