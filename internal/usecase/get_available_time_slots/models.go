package get_available_time_slots

import "time"

// Request модель запроса на получение свободных часовых слотов
type Request struct {
	SpiritID int64     // ID духа, для которого считается доступность
	Date     time.Time // Календарная дата банкета (время суток игнорируется)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	SpiritID int64     // ID духа из запроса
	Date     time.Time // Дата, на которую запрашивались слоты
	Slots    []string  // Метки свободных слотов в порядке сетки ("09:00 AM", ...)
}
