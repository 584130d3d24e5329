package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/SairamGundeboina019/fitness-tracker/models"
)

// ErrRecordNotFound is returned when id+owner match no row. Ownership
// mismatches surface the same way, so callers can't tell whether a row
// they don't own exists.
var ErrRecordNotFound = errors.New("record not found")

// DailyTotal is one day of a weekly summary.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ResourceService is the owner-scoped store shared by meals and workouts.
// measure extracts the numeric value summed by WeeklySummary.
type ResourceService[T any, PT interface {
	*T
	models.Owned
}] struct {
	db      *gorm.DB
	measure func(PT) float64
}

func NewMealService(db *gorm.DB) *ResourceService[models.Meal, *models.Meal] {
	return &ResourceService[models.Meal, *models.Meal]{
		db:      db,
		measure: func(m *models.Meal) float64 { return m.Calories },
	}
}

func NewWorkoutService(db *gorm.DB) *ResourceService[models.Workout, *models.Workout] {
	return &ResourceService[models.Workout, *models.Workout]{
		db:      db,
		measure: func(w *models.Workout) float64 { return w.DurationMinutes },
	}
}

// Create persists rec for userID. Any client-supplied id, owner or
// timestamp is discarded; the store assigns all three.
func (s *ResourceService[T, PT]) Create(userID uint, rec PT) error {
	*rec.Meta() = models.Record{UserID: userID}
	return s.db.Create(rec).Error
}

// ListByOwner returns the owner's records, most recent first.
func (s *ResourceService[T, PT]) ListByOwner(userID uint) ([]T, error) {
	var records []T
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	return records, err
}

// Update replaces the mutable fields of the row matching id AND userID,
// keeping the original creation timestamp.
func (s *ResourceService[T, PT]) Update(id, userID uint, rec PT) error {
	existing := PT(new(T))
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if err != nil {
		return err
	}

	*rec.Meta() = *existing.Meta()
	return s.db.Save(rec).Error
}

// Delete removes the row matching id AND userID.
func (s *ResourceService[T, PT]) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(PT(new(T)))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// WeeklySummary sums the measure per calendar day over the trailing seven
// days, ascending by date. Days without records are absent; the client
// fills the gaps.
func (s *ResourceService[T, PT]) WeeklySummary(userID uint) ([]DailyTotal, error) {
	since := time.Now().AddDate(0, 0, -7)

	var records []T
	err := s.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for i := range records {
		rec := PT(&records[i])
		day := rec.Meta().CreatedAt.Format("2006-01-02")
		totals[day] += s.measure(rec)
	}

	out := make([]DailyTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, DailyTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
