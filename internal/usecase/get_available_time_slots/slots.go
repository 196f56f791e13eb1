package get_available_time_slots

import (
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// slotWindow строит окно [start, start+1h) для метки слота на указанную дату
// Метка интерпретируется в часовом поясе заведения, результат в UTC
func slotWindow(date time.Time, label string) (time.Time, time.Time, error) {
	parsed, err := time.Parse(domain.SlotLabelFormat, label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	loc := domain.VenueLocation()
	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		loc,
	)

	return start.UTC(), start.Add(domain.SlotDuration).UTC(), nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня заведения
func isDateInPast(date, venueNow time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(venueNow.Year(), venueNow.Month(), venueNow.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
