package domain

import (
	"strconv"
	"time"
)

// DefaultCopyrightStartYear is the year the site first went live.
const DefaultCopyrightStartYear = 2021

// CopyrightYears renders the year span shown in the footer. It is a single
// year while now falls in startYear, and "start - current" afterwards.
func CopyrightYears(startYear int, now time.Time) string {
	current := now.Year()
	if current <= startYear {
		return strconv.Itoa(startYear)
	}
	return strconv.Itoa(startYear) + " - " + strconv.Itoa(current)
}
