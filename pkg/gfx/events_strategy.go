package gfx

// EventsConsumerStrategy decides how many queued events are handled per
// loop iteration.
type EventsConsumerStrategy interface {
	Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	return consume(poll, handle, timeoutMs, -1)
}

// DrainMaxStrategy leaves events beyond Max queued for the next iteration, so
// motion events queued by a fast mouse are spread over several frames.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs int) int {
	limit := s.Max
	if limit <= 0 {
		limit = 1
	}
	return consume(poll, handle, timeoutMs, limit)
}

func consume(poll func(timeoutMs int) (Event, bool), handle func(Event), timeoutMs, limit int) int {
	count := 0
	for limit < 0 || count < limit {
		wait := 0
		if count == 0 {
			wait = timeoutMs
		}
		event, ok := poll(wait)
		if !ok {
			break
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
