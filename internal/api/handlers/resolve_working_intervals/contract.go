package resolve_working_intervals

import (
	"context"

	resolveWorkingIntervals "github.com/m04kA/SMC-BarberBooking/internal/usecase/resolve_working_intervals"
)

type ResolveWorkingIntervalsUseCase interface {
	Execute(ctx context.Context, req *resolveWorkingIntervals.Request) (*resolveWorkingIntervals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
