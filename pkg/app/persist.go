package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/db"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/rs/zerolog/log"
)

// state is everything the app persists.
type state struct {
	tasks      []board.Task
	templates  []board.Template
	seedMarker string
	settings   pomodoro.Settings
}

// load reads the four records. Missing or corrupt blobs fall back to defaults.
// The keys that could not be read at all are returned so startup does not overwrite them.
func load(ctx context.Context, store db.Store, defaults pomodoro.Settings) (state, map[db.Key]bool) {
	unreadable := map[db.Key]bool{}

	st := state{
		tasks:      loadRecord(ctx, store, db.KeyTasks, []board.Task{}, unreadable),
		templates:  loadRecord(ctx, store, db.KeyDailyTemplates, []board.Template{}, unreadable),
		seedMarker: loadRecord(ctx, store, db.KeyDailySeedDate, "", unreadable),
		settings:   loadRecord(ctx, store, db.KeyPomodoroSettings, defaults, unreadable).Sanitize(),
	}

	return st, unreadable
}

func loadRecord[T any](ctx context.Context, store db.Store, key db.Key, fallback T, unreadable map[db.Key]bool) T {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", string(key)).Msg("error reading stored state, using defaults")

		unreadable[key] = true

		return fallback
	}

	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", string(key)).Msg("discarding corrupt stored state")

		return fallback
	}

	return value
}

// save writes every record not in skip. It returns the first error but still attempts the rest.
func save(ctx context.Context, store db.Store, st state, skip map[db.Key]bool) error {
	records := []struct {
		key   db.Key
		value interface{}
	}{
		{db.KeyTasks, st.tasks},
		{db.KeyDailyTemplates, st.templates},
		{db.KeyDailySeedDate, st.seedMarker},
		{db.KeyPomodoroSettings, st.settings},
	}

	var first error

	for _, record := range records {
		if skip[record.key] {
			log.Debug().Str("key", string(record.key)).Msg("not saving unreadable record")

			continue
		}

		data, err := json.Marshal(record.value)
		if err == nil {
			err = store.Set(ctx, record.key, data)
		}

		if err != nil {
			log.Warn().Err(err).Str("key", string(record.key)).Msg("error saving state")

			if first == nil {
				first = fmt.Errorf("error saving %s: %w", record.key, err)
			}
		}
	}

	return first
}
