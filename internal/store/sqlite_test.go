package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-entrylevel-collector/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.db")
	st, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRecord(url string) *models.JobRecord {
	record := models.Merge(
		models.ListingSummary{
			Title:      "Junior Go Developer",
			Company:    "Acme Corp",
			Location:   "Berlin, Germany",
			URL:        url,
			Source:     models.SourceName,
			CapturedAt: time.Now(),
		},
		models.ListingDetail{
			Description:     "Build backend services.",
			EmploymentType:  "Full-time",
			Salary:          "$60,000/yr",
			ExperienceLevel: "Entry Level",
			Skills:          []string{"Go", "SQL"},
		},
	)
	return &record
}

func TestSQLiteStore_FindByURL_NotFound(t *testing.T) {
	st := openTestStore(t)

	record, err := st.FindByURL(context.Background(), "https://example.com/jobs/view/404")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, record)
}

func TestSQLiteStore_CreateAndFind(t *testing.T) {
	st := openTestStore(t)
	original := sampleRecord("https://example.com/jobs/view/1")

	err := st.Create(context.Background(), original)
	require.NoError(t, err)

	found, err := st.FindByURL(context.Background(), original.URL)
	require.NoError(t, err)
	assert.Equal(t, original.Title, found.Title)
	assert.Equal(t, original.Company, found.Company)
	assert.Equal(t, original.Location, found.Location)
	assert.Equal(t, original.Source, found.Source)
	assert.Equal(t, original.Description, found.Description)
	assert.Equal(t, original.EmploymentType, found.EmploymentType)
	assert.Equal(t, original.Salary, found.Salary)
	assert.Equal(t, original.ExperienceLevel, found.ExperienceLevel)
	assert.Equal(t, original.Skills, found.Skills)
	assert.WithinDuration(t, original.CapturedAt, found.CapturedAt, time.Second)
}

func TestSQLiteStore_DuplicateURLRejected(t *testing.T) {
	st := openTestStore(t)
	record := sampleRecord("https://example.com/jobs/view/2")

	require.NoError(t, st.Create(context.Background(), record))

	err := st.Create(context.Background(), record)
	assert.Error(t, err, "second insert for the same url must fail")
}

func TestSQLiteStore_EmptySkillsRoundTrip(t *testing.T) {
	st := openTestStore(t)
	record := sampleRecord("https://example.com/jobs/view/3")
	record.Skills = []string{}

	require.NoError(t, st.Create(context.Background(), record))

	found, err := st.FindByURL(context.Background(), record.URL)
	require.NoError(t, err)
	assert.Empty(t, found.Skills)
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.FindByURL(ctx, "https://example.com/jobs/view/9")
	assert.ErrorIs(t, err, ErrNotFound)

	record := sampleRecord("https://example.com/jobs/view/9")
	require.NoError(t, st.Create(ctx, record))
	assert.Equal(t, 1, st.Len())

	found, err := st.FindByURL(ctx, record.URL)
	require.NoError(t, err)
	assert.Equal(t, record.Title, found.Title)

	assert.Error(t, st.Create(ctx, record))
	assert.Equal(t, 1, st.Len())
}
