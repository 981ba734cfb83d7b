package chart

import (
	"fmt"
	"sort"
	"time"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/query"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// NoNumericDataMessage is the reason given when no row of a table can be plotted
const NoNumericDataMessage = "No numeric data available for this combination."

// Point is one aggregated value of a series
type Point struct {
	Time   time.Time `json:"time"`
	Period string    `json:"period"`
	Value  float64   `json:"value"`
	// Count is the number of rows averaged into Value
	Count int `json:"count"`
}

// Series is the line plotted for one filter value
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// Data is a table prepared for a time series line chart
type Data struct {
	Title          string   `json:"title"`
	IndicatorID    string   `json:"indicator_id"`
	IndicatorLabel string   `json:"indicator_label"`
	DimensionID    string   `json:"dimension_id"`
	DimensionLabel string   `json:"dimension_label"`
	Series         []Series `json:"series"`
	Min            float64  `json:"min"`
	Max            float64  `json:"max"`
	Excluded       int      `json:"excluded"`
	Warning        string   `json:"warning,omitempty"`
}

type groupKey struct {
	label string
	time  time.Time
}

type group struct {
	period string
	values []float64
}

// Prepare turns a chronological table into chart series, one per label of the
// dimensionID filter column. Rows whose value is not numeric or whose period
// could not be parsed are excluded and reported in the warning. Rows sharing a
// label and period are averaged.
func Prepare(t *query.Table, indicatorID, dimensionID string) (*Data, error) {
	if !t.Chronological {
		t = query.ToChronological(t)
	}

	d := &Data{
		IndicatorID:    indicatorID,
		IndicatorLabel: indicatorID,
		DimensionID:    dimensionID,
		DimensionLabel: dimensionID,
	}
	d.Title = title(d.IndicatorLabel, d.DimensionLabel)

	column, hasColumn := t.FilterColumn(dimensionID)
	groups := make(map[groupKey]*group)
	var order []groupKey

	for _, r := range t.Rows {
		v, ok := r.Value.Float()
		if !ok || !r.Time.Valid {
			d.Excluded++
			continue
		}

		label := query.Unknown
		if hasColumn {
			if raw, ok := r.Filters[column]; ok {
				label = query.ExtractFilterLabel(raw)
			}
		}

		k := groupKey{label: label, time: r.Time.Time}
		g, ok := groups[k]
		if !ok {
			g = &group{period: r.TimePeriod}
			groups[k] = g
			order = append(order, k)
		}
		g.values = append(g.values, v)
	}

	if len(groups) == 0 {
		return nil, &query.EmptyResultError{IndicatorID: indicatorID, Reason: NoNumericDataMessage}
	}
	if d.Excluded > 0 {
		d.Warning = fmt.Sprintf("%d of %d rows were excluded because their value was not numeric or their time period was not recognised.", d.Excluded, t.Len())
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].label != order[j].label {
			return order[i].label < order[j].label
		}
		return order[i].time.Before(order[j].time)
	})

	var all []float64
	for _, k := range order {
		g := groups[k]
		mean, err := stats.Mean(g.values)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to average values for %s", k.label)
		}
		all = append(all, mean)

		if n := len(d.Series); n == 0 || d.Series[n-1].Label != k.label {
			d.Series = append(d.Series, Series{Label: k.label})
		}
		s := &d.Series[len(d.Series)-1]
		s.Points = append(s.Points, Point{Time: k.time, Period: g.period, Value: mean, Count: len(g.values)})
	}

	var err error
	if d.Min, err = stats.Min(all); err != nil {
		return nil, errors.Wrap(err, "failed to find axis minimum")
	}
	if d.Max, err = stats.Max(all); err != nil {
		return nil, errors.Wrap(err, "failed to find axis maximum")
	}

	return d, nil
}

// Describe labels the chart from the dataset metadata, falling back to ids
func (d *Data) Describe(meta *ees.DatasetMetadata) {
	if meta == nil {
		return
	}
	if ind, ok := meta.Indicator(d.IndicatorID); ok && ind.Label != "" {
		d.IndicatorLabel = ind.Label
	}
	if f, ok := meta.Filter(d.DimensionID); ok && f.Label != "" {
		d.DimensionLabel = f.Label
	}
	d.Title = title(d.IndicatorLabel, d.DimensionLabel)
}

func title(indicator, dimension string) string {
	return fmt.Sprintf("%s by %s", indicator, dimension)
}
