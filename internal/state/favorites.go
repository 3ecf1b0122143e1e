package state

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oasis-voice/oasis/internal/estate"
)

// Favorite is a saved project in the client's shortlist.
type Favorite struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Community     string             `json:"community"`
	ImageURL      string             `json:"image_url,omitempty"`
	Features      []string           `json:"features,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	StartingPrice int                `json:"starting_price,omitempty"`
	CurrencyCode  string             `json:"currency_code,omitempty"`
	ProjectType   estate.ProjectType `json:"project_type,omitempty"`
	PropertyType  string             `json:"property_type,omitempty"`
	ServiceCharge float64            `json:"service_charge,omitempty"`
	Specs         *estate.Specs      `json:"specs,omitempty"`
	SavedAt       time.Time          `json:"saved_at"`
}

// Favorites holds the shortlist. Entries are keyed by project name,
// case-insensitively, so re-adding a project updates it in place.
type Favorites struct {
	mu    sync.RWMutex
	items []Favorite
	path  string
}

func NewFavorites() *Favorites {
	return &Favorites{}
}

// LoadFavorites reads the shortlist persisted at path. A missing file
// yields an empty store bound to the same path.
func LoadFavorites(path string) (*Favorites, error) {
	f := &Favorites{path: path}
	if _, err := loadJSON(path, &f.items); err != nil {
		return nil, err
	}
	return f, nil
}

// Add inserts the favorite, replacing any existing entry with the same
// name. It reports whether an entry already existed.
func (f *Favorites) Add(fav Favorite) (Favorite, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existed := false
	if i := f.indexOf(fav.Name); i >= 0 {
		existed = true
		fav.ID = f.items[i].ID
		if fav.Notes == "" {
			fav.Notes = f.items[i].Notes
		}
		fav.SavedAt = f.items[i].SavedAt
		f.items[i] = fav
	} else {
		fav.ID = uuid.NewString()
		fav.SavedAt = time.Now()
		f.items = append(f.items, fav)
	}
	return fav, existed, f.save()
}

// UpdateNotes replaces the notes of the favorite with the given ID.
func (f *Favorites) UpdateNotes(id, notes string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Notes = notes
			return true, f.save()
		}
	}
	return false, nil
}

// AppendNotes adds text to the favorite's notes, separated by a blank
// line when notes already exist.
func (f *Favorites) AppendNotes(id, text string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			if f.items[i].Notes != "" {
				f.items[i].Notes += "\n\n" + text
			} else {
				f.items[i].Notes = text
			}
			return true, f.save()
		}
	}
	return false, nil
}

// Get returns the favorite with the given project name.
func (f *Favorites) Get(name string) (Favorite, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if i := f.indexOf(name); i >= 0 {
		return f.items[i], true
	}
	return Favorite{}, false
}

// Has reports whether a project with the given name is shortlisted.
func (f *Favorites) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.indexOf(name) >= 0
}

// All returns a snapshot of the shortlist in insertion order.
func (f *Favorites) All() []Favorite {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Favorite, len(f.items))
	copy(out, f.items)
	return out
}

// Remove deletes the favorite with the given ID.
func (f *Favorites) Remove(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, f.save()
		}
	}
	return false, nil
}

func (f *Favorites) indexOf(name string) int {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Name, name) {
			return i
		}
	}
	return -1
}

func (f *Favorites) save() error {
	if f.path == "" {
		return nil
	}
	return saveJSON(f.path, f.items)
}
