package db_test

import (
	"context"
	"os"
	"testing"

	"github.com/matt-steen/focus-board/pkg/db"
	"github.com/stretchr/testify/assert"
)

func tempFile(assert *assert.Assertions) string {
	tempFile, err := os.CreateTemp("", "test_new_database*")
	assert.Nil(err)
	assert.Nil(tempFile.Close())

	return tempFile.Name()
}

func getDB(assert *assert.Assertions) *db.Database {
	database, err := db.NewDatabase(context.Background(), tempFile(assert))
	assert.NotNil(database)
	assert.Nil(err)

	return database
}

func TestNewDatabaseBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database, err := db.NewDatabase(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(database)
	assert.NotNil(err)
	assert.Equal("error running base sql: unable to open database file: no such file or directory", err.Error())
}

func TestNewDatabaseIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	filename := tempFile(assert)

	database, err := db.NewDatabase(context.Background(), filename)
	assert.NotNil(database)
	assert.Nil(err)

	err = database.Set(context.Background(), db.KeyDailySeedDate, []byte(`"2024-03-10"`))
	assert.Nil(err)

	err = database.Close()
	assert.Nil(err)

	database2, err := db.NewDatabase(context.Background(), filename)
	assert.NotNil(database2)
	assert.Nil(err)

	value, ok, err := database2.Get(context.Background(), db.KeyDailySeedDate)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(`"2024-03-10"`, string(value))
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(assert)

	value, ok, err := database.Get(context.Background(), db.KeyTasks)
	assert.Nil(err)
	assert.False(ok)
	assert.Nil(value)
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(assert)
	ctx := context.Background()

	assert.Nil(database.Set(ctx, db.KeyTasks, []byte(`[]`)))
	assert.Nil(database.Set(ctx, db.KeyTasks, []byte(`[{"id":"a"}]`)))

	value, ok, err := database.Get(ctx, db.KeyTasks)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(`[{"id":"a"}]`, string(value))
}

func TestMemory(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	var store db.Store = db.NewMemory()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, db.KeyPomodoroSettings)
	assert.Nil(err)
	assert.False(ok)

	value := []byte(`{"focusMs":1}`)
	assert.Nil(store.Set(ctx, db.KeyPomodoroSettings, value))

	// the store keeps its own copy
	value[0] = 'x'

	got, ok, err := store.Get(ctx, db.KeyPomodoroSettings)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(`{"focusMs":1}`, string(got))
}
