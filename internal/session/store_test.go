package session_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/spcool555/leav-managment-fe/internal/session"
)

var validSession = session.Session{
	EmployeeID: "EMP001",
	FullName:   "Budi Santoso",
	Email:      "budi@example.com",
	Phone:      "0812345678",
	IsAdmin:    false,
}

func TestRedisStore_RestoreAbsent(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db)

	mock.ExpectGet("portal:session:sid-1").RedisNil()

	s, err := store.Restore(context.Background(), "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_RestoreValid(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db)

	raw, _ := json.Marshal(validSession)
	mock.ExpectGet("portal:session:sid-1").SetVal(string(raw))

	s, err := store.Restore(context.Background(), "sid-1")
	assert.NoError(t, err)
	if assert.NotNil(t, s) {
		assert.Equal(t, validSession, *s)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_RestorePurgesCorruptRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", "{not-json"},
		{"missing identity fields", `{"id":"EMP001"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			store := session.NewRedisStore(db)

			mock.ExpectGet("portal:session:sid-1").SetVal(tt.raw)
			mock.ExpectDel("portal:session:sid-1").SetVal(1)

			// Record corrupt tidak pernah naik sebagai error parse.
			s, err := store.Restore(context.Background(), "sid-1")
			assert.NoError(t, err)
			assert.Nil(t, s)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisStore_PersistAndClear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db)

	raw, _ := json.Marshal(validSession)
	mock.ExpectSet("portal:session:sid-1", raw, session.DefaultTTL).SetVal("OK")
	mock.ExpectDel("portal:session:sid-1").SetVal(1)

	assert.NoError(t, store.Persist(context.Background(), "sid-1", validSession))
	assert.NoError(t, store.Clear(context.Background(), "sid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	s, err := store.Restore(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, s)

	assert.NoError(t, store.Persist(ctx, "sid-1", validSession))

	s, err = store.Restore(ctx, "sid-1")
	assert.NoError(t, err)
	if assert.NotNil(t, s) {
		assert.Equal(t, validSession, *s)
	}

	assert.NoError(t, store.Clear(ctx, "sid-1"))
	s, err = store.Restore(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestMemoryStore_CorruptRecordDropped(t *testing.T) {
	store := session.NewMemoryStore()
	session.Seed(store, "sid-1", []byte(`{"id":"EMP001","full_name":""}`))

	s, err := store.Restore(context.Background(), "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, s)

	// Sekali dibuang, restore berikutnya tetap kosong.
	s, err = store.Restore(context.Background(), "sid-1")
	assert.NoError(t, err)
	assert.Nil(t, s)
}
