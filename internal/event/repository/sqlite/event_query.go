package sqlite

import (
	"strings"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/datemath"
)

// buildListQuery builds WHERE + ORDER + LIMIT for ListEvents.
// The window keeps events overlapping [From, To).
func (r *implRepository) buildListQuery(opt repository.ListEventsOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if !opt.From.IsZero() {
		conditions = append(conditions, "end_time > ?")
		args = append(args, datemath.FormatISO(opt.From))
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, "start_time < ?")
		args = append(args, datemath.FormatISO(opt.To))
	}

	query := "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY start_time ASC, created_at ASC"
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}
	return query, args
}
