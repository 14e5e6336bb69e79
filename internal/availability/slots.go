package availability

import (
	"sort"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const minutesPerDay = 24 * 60

// GenerateSlots дискретизирует рабочие интервалы в точки с шагом granularity минут
// и исключает занятые.
//
// Для интервала [start, end) выдаются точки сетки p с floor(start) <= p < floor(end),
// где floor округляет вниз до шага сетки. При шаге 60 это ровно часы h,
// start.hour <= h < end.hour. Занятое время занимает ячейку сетки, в которую попадает.
//
// Результат отсортирован по возрастанию и не содержит повторов
// независимо от порядка и пересечений входных интервалов.
func GenerateSlots(intervals []domain.TimeRange, occupied []types.TimeString, granularity int) []types.TimeString {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, t := range occupied {
		if t.Validate() != nil {
			continue
		}
		taken[floorTo(t.Minutes(), granularity)] = struct{}{}
	}

	points := make(map[int]struct{})
	for _, interval := range intervals {
		if interval.Start.Validate() != nil || interval.End.Validate() != nil {
			continue
		}
		first := floorTo(interval.Start.Minutes(), granularity)
		last := floorTo(interval.End.Minutes(), granularity)
		for p := first; p < last; p += granularity {
			if _, ok := taken[p]; ok {
				continue
			}
			points[p] = struct{}{}
		}
	}

	return toSortedTimes(points)
}

// ExcludeBreaks убирает слоты, ячейка которых [slot, slot+granularity) пересекается с перерывом
func ExcludeBreaks(slots []types.TimeString, breaks []domain.TimeRange, granularity int) []types.TimeString {
	if len(breaks) == 0 {
		return slots
	}
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if overlapsAny(slot.Minutes(), slot.Minutes()+granularity, breaks) {
			continue
		}
		result = append(result, slot)
	}
	return result
}

// OccupiedTimes возвращает время активных (не отмененных) записей
func OccupiedTimes(appointments []*domain.Appointment) []types.TimeString {
	result := make([]types.TimeString, 0, len(appointments))
	for _, appt := range appointments {
		if appt == nil || !appt.IsActive() {
			continue
		}
		result = append(result, appt.Time)
	}
	return result
}

// IsOccupied проверяет, занята ли ячейка сетки, в которую попадает t
func IsOccupied(t types.TimeString, occupied []types.TimeString, granularity int) bool {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	bucket := floorTo(t.Minutes(), granularity)
	for _, o := range occupied {
		if floorTo(o.Minutes(), granularity) == bucket {
			return true
		}
	}
	return false
}

// Contains проверяет, входит ли t в список слотов
func Contains(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

// overlapsAny: полуоткрытые интервалы [a, b) и [s, e) пересекаются, если a < e и s < b
func overlapsAny(start, end int, ranges []domain.TimeRange) bool {
	for _, r := range ranges {
		if start < r.End.Minutes() && r.Start.Minutes() < end {
			return true
		}
	}
	return false
}

func floorTo(minutes, step int) int {
	return minutes - minutes%step
}

func toSortedTimes(points map[int]struct{}) []types.TimeString {
	keys := make([]int, 0, len(points))
	for p := range points {
		if p >= 0 && p < minutesPerDay {
			keys = append(keys, p)
		}
	}
	sort.Ints(keys)

	result := make([]types.TimeString, 0, len(keys))
	for _, p := range keys {
		ts, err := types.NewTimeStringFromMinutes(p)
		if err != nil {
			continue
		}
		result = append(result, ts)
	}
	return result
}
