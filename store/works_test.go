package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemover records media removals instead of touching the filesystem.
type fakeRemover struct {
	mu      sync.Mutex
	removed []string
}

func (f *fakeRemover) Remove(relURL string) {
	f.mu.Lock()
	f.removed = append(f.removed, relURL)
	f.mu.Unlock()
}

func newTestStore(t *testing.T) (*Store, *fakeRemover) {
	t.Helper()
	remover := &fakeRemover{}
	st := New(t.TempDir(), remover)
	require.NoError(t, st.Init())
	return st, remover
}

func strp(s string) *string { return &s }

func TestListWorksFreshStore(t *testing.T) {
	st, _ := newTestStore(t)

	works, err := st.ListWorks()
	require.NoError(t, err)
	assert.Empty(t, works)
	assert.NotNil(t, works)
}

func TestCreateWork(t *testing.T) {
	st, _ := newTestStore(t)

	work, err := st.CreateWork(WorkInput{
		Title:       strp("Weather Station"),
		Description: strp("An ESP32 weather station"),
		Tags:        strp("a, b , c"),
		Link:        strp("https://example.com"),
		ImageURL:    "/uploads/123-abc.png",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, work.ID)
	assert.Equal(t, "Weather Station", work.Title)
	assert.Equal(t, "General", work.Category)
	assert.Equal(t, []string{"a", "b", "c"}, work.Tags)
	assert.Equal(t, "https://example.com", work.Link)
	assert.Equal(t, "/uploads/123-abc.png", work.Image)
	assert.False(t, work.CreatedAt.IsZero())
	assert.Equal(t, work.CreatedAt, work.UpdatedAt)
}

func TestCreateWorkValidation(t *testing.T) {
	st, _ := newTestStore(t)

	tests := []struct {
		name string
		in   WorkInput
	}{
		{name: "missing title", in: WorkInput{Description: strp("desc")}},
		{name: "missing description", in: WorkInput{Title: strp("title")}},
		{name: "empty title", in: WorkInput{Title: strp(""), Description: strp("desc")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.CreateWork(tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	works, err := st.ListWorks()
	require.NoError(t, err)
	assert.Empty(t, works)
}

func TestCreateWorkPrependsAndKeepsIDsUnique(t *testing.T) {
	st, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		work, err := st.CreateWork(WorkInput{Title: strp("t"), Description: strp("d")})
		require.NoError(t, err)
		assert.False(t, seen[work.ID], "id %s reused", work.ID)
		seen[work.ID] = true

		works, err := st.ListWorks()
		require.NoError(t, err)
		assert.Equal(t, work.ID, works[0].ID, "new work must be first")
	}
}

func TestUpdateWorkNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	created, err := st.CreateWork(WorkInput{Title: strp("t"), Description: strp("d")})
	require.NoError(t, err)

	_, err = st.UpdateWork("does-not-exist", WorkInput{Title: strp("x")})
	assert.ErrorIs(t, err, ErrWorkNotFound)

	works, err := st.ListWorks()
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, created.Title, works[0].Title)
}

func TestUpdateWorkPartial(t *testing.T) {
	st, _ := newTestStore(t)

	created, err := st.CreateWork(WorkInput{
		Title:       strp("title"),
		Description: strp("desc"),
		Link:        strp("https://old.example"),
	})
	require.NoError(t, err)

	// only link provided, explicitly empty: cleared, everything else kept
	updated, err := st.UpdateWork(created.ID, WorkInput{Link: strp("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Link)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, created.ID, updated.ID)

	// omitted link stays cleared, title changes
	updated, err = st.UpdateWork(created.ID, WorkInput{Title: strp("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "", updated.Link)
}

func TestUpdateWorkReplacesMedia(t *testing.T) {
	st, remover := newTestStore(t)

	created, err := st.CreateWork(WorkInput{
		Title:       strp("t"),
		Description: strp("d"),
		ImageURL:    "/uploads/old.png",
	})
	require.NoError(t, err)

	updated, err := st.UpdateWork(created.ID, WorkInput{ImageURL: "/uploads/new.png"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.png", updated.Image)
	assert.Equal(t, []string{"/uploads/old.png"}, remover.removed)
}

func TestDeleteWork(t *testing.T) {
	st, remover := newTestStore(t)

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		work, err := st.CreateWork(WorkInput{Title: strp(title), Description: strp("d")})
		require.NoError(t, err)
		ids = append(ids, work.ID)
	}

	// delete the middle record (ids[1] is second-newest, list is newest first)
	_, err := st.UpdateWork(ids[1], WorkInput{ImageURL: "/uploads/mid.png"})
	require.NoError(t, err)
	require.NoError(t, st.DeleteWork(ids[1]))

	works, err := st.ListWorks()
	require.NoError(t, err)
	require.Len(t, works, 2)
	assert.Equal(t, ids[2], works[0].ID)
	assert.Equal(t, ids[0], works[1].ID)
	assert.Contains(t, remover.removed, "/uploads/mid.png")

	assert.ErrorIs(t, st.DeleteWork(ids[1]), ErrWorkNotFound)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: []string{}},
		{raw: "a, b , c", want: []string{"a", "b", "c"}},
		{raw: "solo", want: []string{"solo"}},
		{raw: " , ,x,", want: []string{"x"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitTags(tt.raw), "raw=%q", tt.raw)
	}
}
