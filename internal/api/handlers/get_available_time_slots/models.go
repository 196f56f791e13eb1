package get_available_time_slots

import (
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	getAvailableTimeSlots "github.com/tak4ma/VMS-BanquetService/internal/usecase/get_available_time_slots"
)

// AvailableTimeSlotsResponse HTTP response model
type AvailableTimeSlotsResponse struct {
	SpiritID int64    `json:"spiritId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimeSlots.Response) *AvailableTimeSlotsResponse {
	return &AvailableTimeSlotsResponse{
		SpiritID: resp.SpiritID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    resp.Slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(spiritID int64, dateStr string) (*getAvailableTimeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimeSlots.Request{
		SpiritID: spiritID,
		Date:     date,
	}, nil
}
