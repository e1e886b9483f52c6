package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// clinicZone is the clock all scheduling rules are evaluated in. Clinics run
// on Brasília time regardless of where the server is deployed.
var clinicZone = time.FixedZone("-03", -3*60*60)

// parseInstant accepts RFC 3339 timestamps, falling back to a bare
// YYYY-MM-DD date interpreted in the clinic zone.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, clinicZone)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// dayStart and dayEnd bound a calendar day in the clinic zone.
func dayStart(t time.Time) time.Time {
	y, m, d := t.In(clinicZone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, clinicZone)
}

func dayEnd(t time.Time) time.Time {
	y, m, d := t.In(clinicZone).Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, clinicZone)
}

// weekBounds returns the Sunday 00:00 and Saturday 23:59:59.999 of the week
// containing t, in the clinic zone.
func weekBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(clinicZone)
	sunday := dayStart(local.AddDate(0, 0, -int(local.Weekday())))
	saturday := dayEnd(sunday.AddDate(0, 0, 6))
	return sunday, saturday
}

// checkSchedulable rejects weekend slots and starts already in the past.
func checkSchedulable(start time.Time, now time.Time) error {
	switch start.In(clinicZone).Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekendNotAllowed
	}
	if start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
