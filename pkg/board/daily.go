package board

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Templates returns a copy of the daily templates in order.
func (b *Board) Templates() []Template {
	out := make([]Template, len(b.templates))
	copy(out, b.templates)

	return out
}

// SeedMarker returns the day key of the last seeding, or "" if none happened yet.
func (b *Board) SeedMarker() string {
	return b.seedMarker
}

// Today returns the day key for now in the board's location.
func (b *Board) Today(now int64) string {
	return DayKey(now, b.loc)
}

// AddTemplate prepends a daily template. When today's seeding already ran, the template
// joins it right away with one new task.
func (b *Board) AddTemplate(title string, now int64) (Template, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Template{}, false
	}

	tmpl := Template{ID: b.newID(), Title: title}
	b.templates = append([]Template{tmpl}, b.templates...)

	if b.seedMarker == b.Today(now) {
		task := b.newTask(tmpl.Title, OriginDaily, tmpl.ID)
		b.commit(append([]Task{task}, b.tasks...), now)

		log.Debug().Str("template", tmpl.ID).Msg("template added after today's seeding, materialized now")
	}

	b.SeedIfNeeded(now)

	return tmpl, true
}

// RemoveTemplate deletes a template together with every task created from it, whatever
// their status.
func (b *Board) RemoveTemplate(id string, now int64) bool {
	found := false
	templates := make([]Template, 0, len(b.templates))

	for _, tmpl := range b.templates {
		if tmpl.ID == id {
			found = true

			continue
		}

		templates = append(templates, tmpl)
	}

	if !found {
		return false
	}

	b.templates = templates

	tasks := make([]Task, 0, len(b.tasks))

	for _, task := range b.tasks {
		if task.Origin == OriginDaily && task.OriginID == id {
			continue
		}

		tasks = append(tasks, task)
	}

	log.Debug().Str("template", id).Int("removed", len(b.tasks)-len(tasks)).Msg("removed daily template")

	b.commit(tasks, now)
	b.SeedIfNeeded(now)

	return true
}

// RenameTemplate changes a template's title and every task created from it.
func (b *Board) RenameTemplate(id, title string, now int64) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}

	if !b.renameDaily(id, title) {
		return false
	}

	b.commit(b.tasks, now)

	return true
}

// renameDaily sets title on the template id and all tasks sharing it as origin.
// It reports whether the template or any task matched.
func (b *Board) renameDaily(id, title string) bool {
	matched := false

	for i := range b.templates {
		if b.templates[i].ID == id {
			b.templates[i].Title = title
			matched = true
		}
	}

	for i := range b.tasks {
		if b.tasks[i].Origin == OriginDaily && b.tasks[i].OriginID == id {
			b.tasks[i].Title = title
			matched = true
		}
	}

	return matched
}

// SeedIfNeeded materializes one todo task per template, at most once per calendar day.
// It returns the number of tasks created. Days missed while the program was not running
// are not backfilled.
func (b *Board) SeedIfNeeded(now int64) int {
	today := b.Today(now)
	if b.seedMarker == today || len(b.templates) == 0 {
		return 0
	}

	seeded := make([]Task, 0, len(b.templates)+len(b.tasks))
	for _, tmpl := range b.templates {
		seeded = append(seeded, b.newTask(tmpl.Title, OriginDaily, tmpl.ID))
	}

	b.commit(append(seeded, b.tasks...), now)
	b.seedMarker = today

	log.Info().Str("day", today).Int("tasks", len(seeded)).Msg("seeded daily tasks")

	return len(seeded)
}
