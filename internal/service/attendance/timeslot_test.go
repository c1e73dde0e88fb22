package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
)

func newTestResolver() *SlotResolver {
	return NewSlotResolver(14*60, 5*time.Minute)
}

func clock(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestSlotResolver_WindowSplit(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, WindowMorning, r.WindowOf(clock(0, 0)))
	assert.Equal(t, WindowMorning, r.WindowOf(clock(13, 59)))
	assert.Equal(t, WindowAfternoon, r.WindowOf(clock(14, 0)))
	assert.Equal(t, WindowAfternoon, r.WindowOf(clock(23, 59)))
}

func TestSlotResolver_MorningFillOrder(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}

	first := r.Resolve(att, clock(6, 45))
	assert.True(t, first.Accepted)
	assert.Equal(t, attendance.SlotMorningIn, first.Slot)

	Apply(att, first.Slot, clock(6, 45))

	second := r.Resolve(att, clock(12, 50))
	assert.True(t, second.Accepted)
	assert.Equal(t, attendance.SlotMorningOut, second.Slot)

	Apply(att, second.Slot, clock(12, 50))

	third := r.Resolve(att, clock(13, 30))
	assert.False(t, third.Accepted)
	assert.NotEmpty(t, third.Reason)
}

func TestSlotResolver_AfternoonFillOrder(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}

	first := r.Resolve(att, clock(14, 55))
	assert.True(t, first.Accepted)
	assert.Equal(t, attendance.SlotAfternoonIn, first.Slot)

	Apply(att, first.Slot, clock(14, 55))

	second := r.Resolve(att, clock(18, 50))
	assert.True(t, second.Accepted)
	assert.Equal(t, attendance.SlotAfternoonOut, second.Slot)
}

func TestSlotResolver_WindowsAreIndependent(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}

	// Fill the morning completely.
	Apply(att, attendance.SlotMorningIn, clock(6, 45))
	Apply(att, attendance.SlotMorningOut, clock(12, 50))

	// An afternoon scan starts the afternoon window from scratch.
	decision := r.Resolve(att, clock(14, 10))
	assert.True(t, decision.Accepted)
	assert.Equal(t, attendance.SlotAfternoonIn, decision.Slot)
}

func TestSlotResolver_ExitRequiresMinimumGap(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}
	Apply(att, attendance.SlotMorningIn, clock(6, 45))

	bounced := r.Resolve(att, clock(6, 47))
	assert.False(t, bounced.Accepted)
	assert.Equal(t, attendance.SlotMorningOut, bounced.Slot)
	assert.NotEmpty(t, bounced.Reason)

	// Exactly at the gap boundary the exit is accepted.
	allowed := r.Resolve(att, clock(6, 50))
	assert.True(t, allowed.Accepted)
	assert.Equal(t, attendance.SlotMorningOut, allowed.Slot)
}

func TestSlotResolver_AfternoonExitGap(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}
	Apply(att, attendance.SlotAfternoonIn, clock(14, 0))

	bounced := r.Resolve(att, clock(14, 4))
	assert.False(t, bounced.Accepted)

	allowed := r.Resolve(att, clock(14, 6))
	assert.True(t, allowed.Accepted)
	assert.Equal(t, attendance.SlotAfternoonOut, allowed.Slot)
}

func TestSlotResolver_RejectionLeavesRecordUntouched(t *testing.T) {
	r := newTestResolver()
	att := &attendance.Attendance{}
	Apply(att, attendance.SlotMorningIn, clock(6, 45))
	Apply(att, attendance.SlotMorningOut, clock(12, 50))
	before := *att

	decision := r.Resolve(att, clock(13, 0))

	assert.False(t, decision.Accepted)
	assert.Equal(t, before, *att)
}

func TestSlotResolver_ConfigurableSplit(t *testing.T) {
	r := NewSlotResolver(13*60, 5*time.Minute)
	att := &attendance.Attendance{}

	decision := r.Resolve(att, clock(13, 30))
	assert.True(t, decision.Accepted)
	assert.Equal(t, attendance.SlotAfternoonIn, decision.Slot)
}
