package engine

import (
	"errors"
	"sort"

	"github.com/herculesarena/turfbooking/pkg/helper"
)

var (
	ErrEmptySelection = errors.New("selection: no slots selected")

	// ErrNonContiguousSelection is returned when the picked slots do not form
	// one unbroken block. Bridging the gap instead would bill slots the
	// customer never picked, so gaps are rejected outright.
	ErrNonContiguousSelection = errors.New("selection: selected slots are not contiguous")
)

// Selection accumulates slot picks against one generated sheet. Only
// available slots can be toggled in; toggling a picked slot removes it.
type Selection struct {
	sheet  map[string]Slot
	picked map[string]struct{}
}

// NewSelection builds an empty selection over the given sheet.
func NewSelection(slots []Slot) *Selection {
	sheet := make(map[string]Slot, len(slots))
	for _, s := range slots {
		sheet[s.Time] = s
	}

	return &Selection{
		sheet:  sheet,
		picked: make(map[string]struct{}),
	}
}

// Toggle flips the label in or out of the selection and reports whether it is
// selected afterwards. Unknown and unavailable labels are a no-op.
func (s *Selection) Toggle(label string) bool {
	slot, ok := s.sheet[label]
	if !ok || !slot.Available {
		_, picked := s.picked[label]

		return picked
	}

	if _, picked := s.picked[label]; picked {
		delete(s.picked, label)

		return false
	}

	s.picked[label] = struct{}{}

	return true
}

// Labels returns the picked labels in operating-day order, so after-midnight
// labels sort after the evening ones.
func (s *Selection) Labels() []string {
	labels := make([]string, 0, len(s.picked))
	for label := range s.picked {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool {
		mi, _ := helper.OperatingDayMinute(labels[i])
		mj, _ := helper.OperatingDayMinute(labels[j])

		return mi < mj
	})

	return labels
}

func (s *Selection) Count() int {
	return len(s.picked)
}

// Total sums the per-unit price of every picked slot as priced on the sheet.
func (s *Selection) Total() float64 {
	var total float64
	for label := range s.picked {
		total += s.sheet[label].Price
	}

	return total
}

// Commit is the finalized shape of a selection: the earliest picked label,
// the block duration and the summed price.
type Commit struct {
	StartTime       string
	DurationMinutes int
	TotalAmount     float64
}

// Commit validates the selection and collapses it to a start time, duration
// and total. The picked labels must form consecutive 30-minute steps.
func (s *Selection) Commit() (Commit, error) {
	if len(s.picked) == 0 {
		return Commit{}, ErrEmptySelection
	}

	labels := s.Labels()

	prev, _ := helper.OperatingDayMinute(labels[0])
	for _, label := range labels[1:] {
		m, _ := helper.OperatingDayMinute(label)
		if m != prev+helper.SlotDurationMinutes {
			return Commit{}, ErrNonContiguousSelection
		}

		prev = m
	}

	return Commit{
		StartTime:       labels[0],
		DurationMinutes: len(labels) * helper.SlotDurationMinutes,
		TotalAmount:     s.Total(),
	}, nil
}
