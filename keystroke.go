package goTrust

// minKeystrokeSamples is the channel's sufficiency floor: a single keystroke
// already carries dwell/flight timing.
const minKeystrokeSamples = 1

var keystrokeMetricOrder = []string{
	MetricAvgDwellMs,
	MetricAvgFlightMs,
	MetricTypingSpeedEPM,
}

// keystrokeMetrics computes the channel summary metrics for one batch:
// mean dwell time, mean flight time, and events-per-minute typing speed.
// Events missing a timing field are excluded from that field's mean; typing
// speed needs at least two timestamped events with positive elapsed time.
func keystrokeMetrics(events []KeystrokeEvent) map[string]float64 {
	metrics := make(map[string]float64, 3)

	var dwells, flights []float64
	for _, e := range events {
		if e.DwellTime > 0 {
			dwells = append(dwells, e.DwellTime)
		}
		if e.FlightTime > 0 {
			flights = append(flights, e.FlightTime)
		}
	}
	if v, ok := mean(dwells); ok {
		metrics[MetricAvgDwellMs] = v
	}
	if v, ok := mean(flights); ok {
		metrics[MetricAvgFlightMs] = v
	}

	if len(events) >= 2 {
		elapsed := events[len(events)-1].Timestamp.Sub(events[0].Timestamp)
		if elapsed > 0 {
			metrics[MetricTypingSpeedEPM] = float64(len(events)) / elapsed.Minutes()
		}
	}

	return metrics
}

// analyzeKeystrokes scores one keystroke batch against the stored baseline.
// Pure function: no side effects, safe under unlimited concurrency.
func analyzeKeystrokes(events []KeystrokeEvent, baseline map[string]float64) ChannelResult {
	if len(events) < minKeystrokeSamples {
		return insufficientData(ChannelKeystroke, len(events))
	}

	metrics := keystrokeMetrics(events)
	return scoreMetrics(ChannelKeystroke, metrics, baseline, keystrokeMetricOrder, len(events))
}

// keystrokeDigest extracts the raw values retained in the profile's bounded
// digest ring: dwell times, in batch order.
func keystrokeDigest(events []KeystrokeEvent) []float64 {
	var out []float64
	for _, e := range events {
		if e.DwellTime > 0 {
			out = append(out, e.DwellTime)
		}
	}
	return out
}
