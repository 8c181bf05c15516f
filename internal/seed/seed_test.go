package seed

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
	"github.com/hirokishimizu39/ThisIsJapan/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var pgs *store.PostgresStore

const migrationsFolder = "../../db/migrations"

func TestMain(m *testing.M) {
	res, close := testdb.StartPostgres(context.Background(), testdb.PostgresStartRequest{
		User:     "test",
		Password: "test",
		DB:       "test",
	})
	defer close()

	var err error
	pgs, err = store.NewPostgresStore(store.PostgresConfig{
		Host:     res.Host,
		Port:     res.Port,
		User:     "test",
		Password: "test",
		DB:       "test",
	})
	if err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}

	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	testdb.ResetMigrations(t, pgs.DB(), migrationsFolder)

	require.NoError(t, Run(t.Context(), pgs))

	acct, err := pgs.GetAccountByHandle(t.Context(), "defaultuser")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.Credential), []byte("password123")))

	photos, err := pgs.ListPhotos(t.Context())
	require.NoError(t, err)
	require.Len(t, photos, 5)
	for _, p := range photos {
		assert.Equal(t, acct.ID, p.AccountID)
		assert.Equal(t, int(p.ID), p.Likes)
	}

	words, err := pgs.ListWords(t.Context())
	require.NoError(t, err)
	require.Len(t, words, 5)
	for _, w := range words {
		assert.Equal(t, acct.ID, w.AccountID)
		assert.Equal(t, int(w.ID), w.Likes)
	}

	experiences, err := pgs.CountExperiences(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), experiences)
}

func TestRun_Idempotent(t *testing.T) {
	testdb.ResetMigrations(t, pgs.DB(), migrationsFolder)

	require.NoError(t, Run(t.Context(), pgs))
	require.NoError(t, Run(t.Context(), pgs))

	photos, err := pgs.CountPhotos(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), photos)

	words, err := pgs.CountWords(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), words)

	experiences, err := pgs.CountExperiences(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), experiences)
}

// Seeding does not touch tables that already hold rows.
func TestRun_SkipsNonEmptyTables(t *testing.T) {
	testdb.ResetMigrations(t, pgs.DB(), migrationsFolder)

	acct, err := pgs.InsertAccount(t.Context(), store.AccountInsertRequest{
		Handle:     "existing",
		Credential: "hash",
	})
	require.NoError(t, err)

	_, err = pgs.InsertPhoto(t.Context(), store.PhotoInsertRequest{
		Title:     "my photo",
		ImageURL:  "https://example.com/mine.jpg",
		AccountID: acct.ID,
	})
	require.NoError(t, err)

	require.NoError(t, Run(t.Context(), pgs))

	photos, err := pgs.CountPhotos(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), photos)

	// empty tables still get their demo rows
	words, err := pgs.CountWords(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), words)
}
