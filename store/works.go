package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhid/portfolio-backend/model"
)

// WorkInput carries the form fields of a create or update request. A nil
// pointer means the field was absent from the form; partial updates only
// touch present fields. ImageURL/VideoURL are set when the upload step
// stored a new file for the request.
type WorkInput struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *string // comma-separated, split and trimmed
	Link        *string // present-but-empty clears the link
	ImageURL    string
	VideoURL    string
}

// ListWorks returns the stored works, newest first. A missing file is an
// empty portfolio, not an error.
func (s *Store) ListWorks() ([]model.Work, error) {
	s.worksMu.Lock()
	defer s.worksMu.Unlock()
	return s.loadWorks()
}

func (s *Store) loadWorks() ([]model.Work, error) {
	works := []model.Work{}
	if err := s.readJSON(s.worksPath(), &works); err != nil {
		if os.IsNotExist(err) {
			return []model.Work{}, nil
		}
		return nil, err
	}
	return works, nil
}

// CreateWork validates and prepends a new work. The id is derived from the
// current time and bumped until unique among the stored ids.
func (s *Store) CreateWork(in WorkInput) (*model.Work, error) {
	if strVal(in.Title) == "" || strVal(in.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	s.worksMu.Lock()
	defer s.worksMu.Unlock()

	works, err := s.loadWorks()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	work := model.Work{
		ID:          nextWorkID(works),
		Title:       strVal(in.Title),
		Description: strVal(in.Description),
		Category:    "General",
		Tags:        splitTags(strVal(in.Tags)),
		Link:        strVal(in.Link),
		Image:       in.ImageURL,
		Video:       in.VideoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if strVal(in.Category) != "" {
		work.Category = strVal(in.Category)
	}

	works = append([]model.Work{work}, works...)
	if err := s.writeJSON(s.worksPath(), works); err != nil {
		return nil, err
	}
	return &work, nil
}

// UpdateWork applies a partial update to the work with the given id.
// Omitted fields keep their old values; an explicitly empty link clears it.
// New media replaces the stored file, deleting the old one best-effort.
func (s *Store) UpdateWork(id string, in WorkInput) (*model.Work, error) {
	s.worksMu.Lock()
	defer s.worksMu.Unlock()

	works, err := s.loadWorks()
	if err != nil {
		return nil, err
	}

	idx := indexOfWork(works, id)
	if idx < 0 {
		return nil, ErrWorkNotFound
	}
	work := &works[idx]

	if strVal(in.Title) != "" {
		work.Title = strVal(in.Title)
	}
	if strVal(in.Description) != "" {
		work.Description = strVal(in.Description)
	}
	if strVal(in.Category) != "" {
		work.Category = strVal(in.Category)
	}
	if strVal(in.Tags) != "" {
		work.Tags = splitTags(strVal(in.Tags))
	}
	if in.Link != nil {
		work.Link = *in.Link
	}
	if in.ImageURL != "" {
		s.removeMedia(work.Image)
		work.Image = in.ImageURL
	}
	if in.VideoURL != "" {
		s.removeMedia(work.Video)
		work.Video = in.VideoURL
	}
	work.UpdatedAt = time.Now().UTC()

	if err := s.writeJSON(s.worksPath(), works); err != nil {
		return nil, err
	}
	updated := *work
	return &updated, nil
}

// DeleteWork removes the work with the given id along with its media files.
func (s *Store) DeleteWork(id string) error {
	s.worksMu.Lock()
	defer s.worksMu.Unlock()

	works, err := s.loadWorks()
	if err != nil {
		return err
	}

	idx := indexOfWork(works, id)
	if idx < 0 {
		return ErrWorkNotFound
	}

	s.removeMedia(works[idx].Image)
	s.removeMedia(works[idx].Video)

	works = append(works[:idx], works[idx+1:]...)
	return s.writeJSON(s.worksPath(), works)
}

func indexOfWork(works []model.Work, id string) int {
	for i := range works {
		if works[i].ID == id {
			return i
		}
	}
	return -1
}

// nextWorkID returns the current unix-milli timestamp as a decimal string,
// incremented past any id already in use.
func nextWorkID(works []model.Work) string {
	taken := make(map[string]bool, len(works))
	for _, w := range works {
		taken[w.ID] = true
	}
	ms := time.Now().UnixMilli()
	for taken[strconv.FormatInt(ms, 10)] {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}

// splitTags turns a comma-separated string into trimmed tags, dropping
// empty segments.
func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
