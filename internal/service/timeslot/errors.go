package timeslot

import "errors"

var (
	// ErrInvalidBoundaries возвращается при нарушении правил границ слота:
	// округление, порядок, длительность или рабочие часы
	ErrInvalidBoundaries = errors.New("timeslot: invalid slot boundaries")

	// ErrSlotOverlapping возвращается, когда слот пересекается с существующим
	ErrSlotOverlapping = errors.New("timeslot: slot is overlapping an existing one")
)
