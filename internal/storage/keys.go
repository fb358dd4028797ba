// ABOUTME: Composite document-key construction and legacy-format fallback.
// ABOUTME: Day logs have one canonical and two historical key forms.
package storage

import (
	"strings"
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

// Day-log documents have accumulated three key formats over time:
//
//	{date}_{childId}   canonical, all new writes
//	{childId}_{date}   legacy
//	{date}             legacy, from before multi-child support
//
// Reads fall back across all three in that order; writes always use the
// canonical form.

// DayLogKey returns the canonical key for a (child, date) day log.
func DayLogKey(childID, date string) string {
	return date + "_" + childID
}

// DayLogLocators returns every key under which a (child, date) day log may
// exist, canonical first.
func DayLogLocators(childID, date string) []string {
	return []string{
		DayLogKey(childID, date),
		childID + "_" + date,
		date,
	}
}

// DailyPlanKey returns the key for a (child, date) daily plan. Plans never
// had legacy forms; there is exactly one per child and date.
func DailyPlanKey(childID, date string) string {
	return DayLogKey(childID, date)
}

// DateFromDayLogKey extracts the calendar date from a day-log key of any
// vintage. It tries canonical prefix-is-date, then legacy suffix-is-date,
// and finally returns the raw key unchanged. It never fails.
func DateFromDayLogKey(key string) string {
	if IsDate(key) {
		return key
	}
	if i := strings.Index(key, "_"); i >= 0 {
		if prefix := key[:i]; IsDate(prefix) {
			return prefix
		}
	}
	if i := strings.LastIndex(key, "_"); i >= 0 {
		if suffix := key[i+1:]; IsDate(suffix) {
			return suffix
		}
	}
	return key
}

// ChildFromDayLogKey extracts the child ID from a day-log key, or empty for
// the bare-date legacy form.
func ChildFromDayLogKey(key string) string {
	if IsDate(key) {
		return ""
	}
	if i := strings.Index(key, "_"); i >= 0 && IsDate(key[:i]) {
		return key[i+1:]
	}
	if i := strings.LastIndex(key, "_"); i >= 0 && IsDate(key[i+1:]) {
		return key[:i]
	}
	return ""
}

// IsDate reports whether s is a canonical YYYY-MM-DD date.
func IsDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
