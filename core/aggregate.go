package core

import "github.com/tgunes/sunseries/schema"

// bucket accumulates running sums for one group key until finalized.
type bucket struct {
	irradiance  float64
	sunHours    float64
	temperature float64
	windSpeed   float64
	intensity   float64
	count       int
}

// Aggregate groups records by hour (or by day and hour) and computes the
// arithmetic mean of each numeric field per group, plus the contributing
// record count. A key with zero records is never present in the result;
// missing keys are reported at format time as "no data" rather than zero.
func Aggregate(records []schema.Record, groupBy schema.GroupBy) map[schema.GroupKey]schema.HourSummary {
	buckets := make(map[schema.GroupKey]*bucket)

	for _, rec := range records {
		key := schema.GroupKey{Hour: rec.Hour}
		if groupBy == schema.GroupByDayHour {
			key.Day = rec.Day
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.irradiance += rec.Irradiance
		b.sunHours += rec.SunHours
		b.temperature += rec.Temperature
		b.windSpeed += rec.WindSpeed
		b.intensity += rec.Intensity
		b.count++
	}

	// Finalize each bucket exactly once into an immutable summary.
	summaries := make(map[schema.GroupKey]schema.HourSummary, len(buckets))
	for key, b := range buckets {
		n := float64(b.count)
		summaries[key] = schema.HourSummary{
			Key:         key,
			Count:       b.count,
			Irradiance:  b.irradiance / n,
			SunHours:    b.sunHours / n,
			Temperature: b.temperature / n,
			WindSpeed:   b.windSpeed / n,
			Intensity:   b.intensity / n,
		}
	}
	return summaries
}
