package attendance

import (
	"fmt"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
)

// Window is the half-day a scan falls into.
type Window string

const (
	WindowMorning   Window = "morning"
	WindowAfternoon Window = "afternoon"
)

// SlotDecision is the outcome of resolving one scan against the day's record.
// Rejections are business outcomes, not errors: the record stays untouched and
// Reason carries the kiosk message.
type SlotDecision struct {
	Window   Window
	Slot     attendance.Slot
	Accepted bool
	Reason   string
}

// SlotResolver assigns a scan to one of the four daily slots. Each half-day
// fills in order: entry first, exit second, then the window is closed. The
// exit slot additionally requires a minimum gap since the entry to swallow
// accidental double scans at the kiosk.
type SlotResolver struct {
	afternoonStartMinute int
	minShiftGap          time.Duration
}

func NewSlotResolver(afternoonStartMinute int, minShiftGap time.Duration) *SlotResolver {
	return &SlotResolver{
		afternoonStartMinute: afternoonStartMinute,
		minShiftGap:          minShiftGap,
	}
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WindowOf reports which half-day the moment belongs to.
func (r *SlotResolver) WindowOf(t time.Time) Window {
	if minuteOfDay(t) < r.afternoonStartMinute {
		return WindowMorning
	}
	return WindowAfternoon
}

// Resolve decides which slot the scan fills, given the day's current record.
func (r *SlotResolver) Resolve(att *attendance.Attendance, scannedAt time.Time) SlotDecision {
	if r.WindowOf(scannedAt) == WindowMorning {
		return r.resolveWindow(WindowMorning, att.MorningIn, att.MorningOut,
			attendance.SlotMorningIn, attendance.SlotMorningOut, scannedAt)
	}
	return r.resolveWindow(WindowAfternoon, att.AfternoonIn, att.AfternoonOut,
		attendance.SlotAfternoonIn, attendance.SlotAfternoonOut, scannedAt)
}

func (r *SlotResolver) resolveWindow(w Window, in, out *time.Time, inSlot, outSlot attendance.Slot, scannedAt time.Time) SlotDecision {
	if in == nil {
		return SlotDecision{Window: w, Slot: inSlot, Accepted: true}
	}
	if out == nil {
		if elapsed := scannedAt.Sub(*in); elapsed < r.minShiftGap {
			wait := int(r.minShiftGap.Minutes())
			return SlotDecision{
				Window:   w,
				Slot:     outSlot,
				Accepted: false,
				Reason:   fmt.Sprintf("Entrada ya registrada. Espera al menos %d minutos para registrar tu salida (%d transcurridos).", wait, int(elapsed.Minutes())),
			}
		}
		return SlotDecision{Window: w, Slot: outSlot, Accepted: true}
	}

	reason := "Turno de la mañana ya registrado completamente."
	if w == WindowAfternoon {
		reason = "Turno de la tarde ya registrado completamente."
	}
	return SlotDecision{Window: w, Accepted: false, Reason: reason}
}

// Apply writes the scan timestamp into the decided slot.
func Apply(att *attendance.Attendance, slot attendance.Slot, scannedAt time.Time) {
	t := scannedAt
	switch slot {
	case attendance.SlotMorningIn:
		att.MorningIn = &t
	case attendance.SlotMorningOut:
		att.MorningOut = &t
	case attendance.SlotAfternoonIn:
		att.AfternoonIn = &t
	case attendance.SlotAfternoonOut:
		att.AfternoonOut = &t
	}
}
