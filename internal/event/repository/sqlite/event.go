package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

const eventColumns = `id, user_id, title, description, start_time, end_time, location, color, created_at, updated_at`

func newID() string {
	return uuid.NewString()
}

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	now := r.now().UTC()
	ev := model.Event{
		ID:          r.uid(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		StartTime:   opt.StartTime.UTC(),
		EndTime:     opt.EndTime.UTC(),
		Location:    opt.Location,
		Color:       opt.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ev.Color == "" {
		ev.Color = model.DefaultColor
	}

	query := fmt.Sprintf(`INSERT INTO events (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, eventColumns)
	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.UserID, ev.Title, ev.Description,
		datemath.FormatISO(ev.StartTime), datemath.FormatISO(ev.EndTime),
		ev.Location, string(ev.Color),
		datemath.FormatISO(ev.CreatedAt), datemath.FormatISO(ev.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	// stored values are millisecond precision; return what a later read would see
	return r.roundTrip(ev), nil
}

// ListEvents returns a user's events ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM events %s`, eventColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			ev                               model.Event
			color                            string
			start, end, createdAt, updatedAt string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Title, &ev.Description, &start, &end,
			&ev.Location, &color, &createdAt, &updatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repository.ErrFailedToList
		}
		ev.Color = model.Color(color)
		if err := parseTimes(&ev, start, end, createdAt, updatedAt); err != nil {
			r.l.Errorf(ctx, "%s row %s: %v", r.dsn("ListEvents"), ev.ID, err)
			return nil, repository.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

func (r *implRepository) roundTrip(ev model.Event) model.Event {
	ev.StartTime = ev.StartTime.Truncate(time.Millisecond)
	ev.EndTime = ev.EndTime.Truncate(time.Millisecond)
	ev.CreatedAt = ev.CreatedAt.Truncate(time.Millisecond)
	ev.UpdatedAt = ev.UpdatedAt.Truncate(time.Millisecond)
	return ev
}

func parseTimes(ev *model.Event, start, end, createdAt, updatedAt string) error {
	var err error
	if ev.StartTime, err = datemath.ParseISO(start); err != nil {
		return err
	}
	if ev.EndTime, err = datemath.ParseISO(end); err != nil {
		return err
	}
	if ev.CreatedAt, err = datemath.ParseISO(createdAt); err != nil {
		return err
	}
	if ev.UpdatedAt, err = datemath.ParseISO(updatedAt); err != nil {
		return err
	}
	return nil
}
