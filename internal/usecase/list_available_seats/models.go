package list_available_seats

import (
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// Request модель запроса на расчет доступности мест
type Request struct {
	SpiritID  int64     // ID духа, для которого считается доступность
	StartTime time.Time // Начало окна; конец всегда StartTime + 1 час
}

// Response модель ответа с доступностью по каждому столу
// Результат производный и нигде не сохраняется: каждый запрос строит
// свое представление заново
type Response struct {
	SpiritID  int64
	StartTime time.Time
	EndTime   time.Time
	Tables    []TableAvailability
}

// TableAvailability доступность одного стола
type TableAvailability struct {
	ID       int64
	Capacity int
	State    bool

	// Available false означает, что за столом сидит дух с relation=forbidden
	// к запрашивающему: весь стол недоступен целиком
	Available bool

	// Seats отсортированы по seat_number; порядок определяет соседство
	Seats []SeatAvailability

	// Occupies текущие гости стола в окне запроса (для наблюдаемости)
	Occupies []Occupant
}

// SeatAvailability доступность одного места
type SeatAvailability struct {
	ID         int64
	SeatNumber int

	// Available false: место занято бронью, задето правилом separation
	// соседа, либо весь стол закрыт правилом forbidden
	Available bool

	// ReservationID заполнен, если место занято бронью
	ReservationID *int64
}

// Occupant дух, занимающий место за столом, вместе со своим типом
type Occupant struct {
	Spirit domain.Spirit
	Type   *domain.SpiritType
}

// HasFreeSeat сообщает, есть ли за столом хотя бы одно свободное место
func (t *TableAvailability) HasFreeSeat() bool {
	if !t.Available {
		return false
	}
	for _, s := range t.Seats {
		if s.Available {
			return true
		}
	}
	return false
}

// HasFreeSeat сообщает, есть ли свободное место хотя бы за одним столом
func (r *Response) HasFreeSeat() bool {
	for i := range r.Tables {
		if r.Tables[i].HasFreeSeat() {
			return true
		}
	}
	return false
}
