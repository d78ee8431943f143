package core

import (
	"sort"

	"github.com/tgunes/sunseries/schema"
)

// RankByIrradiance sorts finalized summaries by mean irradiance, descending
// for peak queries and ascending for minimum queries, and returns the first
// n entries. The pre-sort by group key plus a stable sort keeps tie order
// deterministic across runs.
func RankByIrradiance(summaries map[schema.GroupKey]schema.HourSummary, direction schema.RankDirection, n int) []schema.HourSummary {
	ranked := make([]schema.HourSummary, 0, len(summaries))
	for _, s := range summaries {
		ranked = append(ranked, s)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Key.Day != ranked[j].Key.Day {
			return ranked[i].Key.Day < ranked[j].Key.Day
		}
		return ranked[i].Key.Hour < ranked[j].Key.Hour
	})

	sort.SliceStable(ranked, func(i, j int) bool {
		if direction == schema.MinimumDirection {
			return ranked[i].Irradiance < ranked[j].Irradiance
		}
		return ranked[i].Irradiance > ranked[j].Irradiance
	})

	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
