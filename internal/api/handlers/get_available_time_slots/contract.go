package get_available_time_slots

import (
	"context"

	getAvailableTimeSlots "github.com/tak4ma/VMS-BanquetService/internal/usecase/get_available_time_slots"
)

type GetAvailableTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableTimeSlots.Request) (*getAvailableTimeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
