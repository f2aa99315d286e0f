package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sheet() []Slot {
	return Generate(cricketGround, testDate, nil)
}

func TestSelection_ToggleAndTotal(t *testing.T) {
	sel := NewSelection(sheet())

	assert.True(t, sel.Toggle("18:00"))
	assert.True(t, sel.Toggle("18:30"))
	assert.Equal(t, 2, sel.Count())

	// two peak slots at 1200*1.2/2 each
	assert.Equal(t, float64(1440), sel.Total())

	// toggling again removes the pick
	assert.False(t, sel.Toggle("18:30"))
	assert.Equal(t, 1, sel.Count())
	assert.Equal(t, float64(720), sel.Total())
}

func TestSelection_UnknownAndUnavailableLabels(t *testing.T) {
	slots := sheet()
	for i := range slots {
		if slots[i].Time == "10:00" {
			slots[i].Available = false
			slots[i].Price = 0
		}
	}

	sel := NewSelection(slots)

	assert.False(t, sel.Toggle("10:00"))
	assert.False(t, sel.Toggle("05:00"))
	assert.False(t, sel.Toggle("garbage"))
	assert.Equal(t, 0, sel.Count())
}

func TestSelection_LabelsOperatingDayOrder(t *testing.T) {
	sel := NewSelection(sheet())

	sel.Toggle("00:00")
	sel.Toggle("23:30")
	sel.Toggle("00:30")

	assert.Equal(t, []string{"23:30", "00:00", "00:30"}, sel.Labels())
}

func TestSelection_Commit(t *testing.T) {
	t.Run("contiguous block", func(t *testing.T) {
		sel := NewSelection(sheet())
		sel.Toggle("18:00")
		sel.Toggle("18:30")

		commit, err := sel.Commit()

		assert.NoError(t, err)
		assert.Equal(t, "18:00", commit.StartTime)
		assert.Equal(t, 60, commit.DurationMinutes)
		assert.Equal(t, float64(1440), commit.TotalAmount)
	})

	t.Run("block across midnight", func(t *testing.T) {
		sel := NewSelection(sheet())
		sel.Toggle("23:30")
		sel.Toggle("00:00")

		commit, err := sel.Commit()

		assert.NoError(t, err)
		assert.Equal(t, "23:30", commit.StartTime)
		assert.Equal(t, 60, commit.DurationMinutes)
	})

	t.Run("empty selection", func(t *testing.T) {
		sel := NewSelection(sheet())

		_, err := sel.Commit()

		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("gap in the block", func(t *testing.T) {
		sel := NewSelection(sheet())
		sel.Toggle("18:00")
		sel.Toggle("19:00")

		_, err := sel.Commit()

		assert.ErrorIs(t, err, ErrNonContiguousSelection)
	})
}
