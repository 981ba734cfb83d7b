package query

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func sept1(year int) time.Time {
	return time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	Convey("An academic year maps to September 1st of its first year", t, func() {
		p := ParsePeriod("2024/2025")
		So(p.Valid, ShouldBeTrue)
		So(p.Time, ShouldEqual, sept1(2024))
	})

	Convey("A single year maps to September 1st of that year", t, func() {
		p := ParsePeriod("2024")
		So(p.Valid, ShouldBeTrue)
		So(p.Time, ShouldEqual, sept1(2024))
	})

	Convey("Whitespace around the year is ignored", t, func() {
		p := ParsePeriod("2023 / 2024")
		So(p.Valid, ShouldBeTrue)
		So(p.Time, ShouldEqual, sept1(2023))
	})

	Convey("Labels that are not years have no value", t, func() {
		So(ParsePeriod("not-a-period").Valid, ShouldBeFalse)
		So(ParsePeriod("qwerty").Valid, ShouldBeFalse)
		So(ParsePeriod("").Valid, ShouldBeFalse)
		So(ParsePeriod(Unknown).Valid, ShouldBeFalse)
	})

	Convey("Years outside the plottable timestamp range have no value", t, func() {
		So(ParsePeriod("1677").Valid, ShouldBeFalse)
		So(ParsePeriod("2262/2263").Valid, ShouldBeFalse)
		So(ParsePeriod("0001").Valid, ShouldBeFalse)
		So(ParsePeriod("1678").Time, ShouldEqual, sept1(1678))
		So(ParsePeriod("2261/2262").Time, ShouldEqual, sept1(2261))
	})
}

func TestToChronological(t *testing.T) {
	Convey("Given rows out of chronological order", t, func() {
		table := &Table{
			IndicatorID: "IND1",
			Rows: []Row{
				{TimePeriod: "2024/2025", Value: NumberValue(1)},
				{TimePeriod: "not-a-period", Value: NumberValue(2)},
				{TimePeriod: "2022/2023", Value: NumberValue(3)},
				{TimePeriod: "2024", Value: NumberValue(4)},
			},
		}

		Convey("When they are put in chronological order", func() {
			out := ToChronological(table)

			Convey("Then rows sort ascending, stable for equal times, unparseable last", func() {
				So(out.Chronological, ShouldBeTrue)
				So(out.Len(), ShouldEqual, 4)
				So(out.Rows[0].Value, ShouldResemble, NumberValue(3))
				So(out.Rows[1].Value, ShouldResemble, NumberValue(1))
				So(out.Rows[2].Value, ShouldResemble, NumberValue(4))
				So(out.Rows[3].Value, ShouldResemble, NumberValue(2))
				So(out.Rows[3].Time.Valid, ShouldBeFalse)
				So(out.Rows[3].TimePeriod, ShouldEqual, "not-a-period")
				So(out.Rows[0].Time.Time, ShouldEqual, sept1(2022))
			})

			Convey("Then the input table keeps its order", func() {
				So(table.Rows[0].Value, ShouldResemble, NumberValue(1))
				So(table.Chronological, ShouldBeFalse)
			})
		})
	})
}
