package query

import (
	"testing"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	. "github.com/smartystreets/goconvey/convey"
)

func record(s string) ees.RawRecord {
	return ees.RawRecord(s)
}

func normalizeOne(rec ees.RawRecord, indicatorID string) (Row, bool) {
	row, _, ok := normalizeRecord(rec, indicatorID)
	return row, ok
}

func TestNormalizeRecord(t *testing.T) {
	Convey("Given a complete record", t, func() {
		rec := record(`{
			"timePeriod": {"code": "AY", "period": "2024/2025"},
			"geographicLevel": "NAT",
			"locations": {"NAT": "E92000001 :: England"},
			"values": {"OTHER :: Another": "7", "IND1 :: Some Label": "42"},
			"filters": {"gender": "M :: Male", "phase": "P :: Primary"}
		}`)

		Convey("When it is normalised for IND1", func() {
			row, ok := normalizeOne(rec, "IND1")

			Convey("Then every column is flattened", func() {
				So(ok, ShouldBeTrue)
				So(row.TimePeriod, ShouldEqual, "2024/2025")
				So(row.GeographicLevel, ShouldEqual, "NAT")
				So(row.LocationName, ShouldEqual, "E92000001 :: England")
				So(row.Value, ShouldResemble, NumberValue(42))
				So(row.Filters, ShouldResemble, map[string]string{"gender": "M :: Male", "phase": "P :: Primary"})
			})
		})
	})

	Convey("Given records with different indicator values", t, func() {
		Convey("A numeric string is parsed as a number", func() {
			row, ok := normalizeOne(record(`{"values": {"IND1 :: Some Label": "42"}}`), "IND1")
			So(ok, ShouldBeTrue)
			So(row.Value.Kind, ShouldEqual, ValueNumber)
			f, isNumber := row.Value.Float()
			So(isNumber, ShouldBeTrue)
			So(f, ShouldEqual, 42.0)
		})

		Convey("A JSON number is kept as a number", func() {
			row, ok := normalizeOne(record(`{"values": {"IND1 :: Some Label": 12.5}}`), "IND1")
			So(ok, ShouldBeTrue)
			So(row.Value, ShouldResemble, NumberValue(12.5))
		})

		Convey("A sentinel string is kept verbatim", func() {
			row, ok := normalizeOne(record(`{"values": {"IND1 :: Some Label": "suppressed"}}`), "IND1")
			So(ok, ShouldBeTrue)
			So(row.Value, ShouldResemble, StringValue("suppressed"))
			_, isNumber := row.Value.Float()
			So(isNumber, ShouldBeFalse)
		})

		Convey("A null value excludes the record", func() {
			_, ok := normalizeOne(record(`{"values": {"IND1 :: Some Label": null}}`), "IND1")
			So(ok, ShouldBeFalse)
		})

		Convey("A record without the indicator is excluded", func() {
			_, ok := normalizeOne(record(`{"values": {"IND2 :: Other": "1"}}`), "IND1")
			So(ok, ShouldBeFalse)
		})

		Convey("The first key containing the indicator id wins", func() {
			row, ok := normalizeOne(record(`{"values": {"IND10 :: Ten": "10", "IND1 :: One": "1"}}`), "IND1")
			So(ok, ShouldBeTrue)
			So(row.Value, ShouldResemble, NumberValue(10))
		})

		Convey("The first matching key wins even when its value is null", func() {
			_, ok := normalizeOne(record(`{"values": {"IND1 :: One": null, "IND1 :: Again": "3"}}`), "IND1")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a record missing its descriptive fields", t, func() {
		row, ok := normalizeOne(record(`{"locations": {}, "values": {"IND1 :: One": "5"}}`), "IND1")

		Convey("Then they default to Unknown", func() {
			So(ok, ShouldBeTrue)
			So(row.TimePeriod, ShouldEqual, Unknown)
			So(row.GeographicLevel, ShouldEqual, Unknown)
			So(row.LocationName, ShouldEqual, Unknown)
			So(row.Filters, ShouldBeNil)
		})
	})

	Convey("Given a record with several locations", t, func() {
		row, _ := normalizeOne(record(`{"locations": {"REG": "North East", "NAT": "England"}, "values": {"IND1 :: One": "5"}}`), "IND1")

		Convey("Then the first location in the document is used", func() {
			So(row.LocationName, ShouldEqual, "North East")
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given a list of raw records", t, func() {
		records := []ees.RawRecord{
			record(`{"timePeriod": {"period": "2023/2024"}, "values": {"IND1 :: One": "1"}, "filters": {"gender": "M :: Male"}}`),
			record(`{"timePeriod": {"period": "2022/2023"}, "values": {"IND1 :: One": null}, "filters": {"gender": "F :: Female"}}`),
			record(`{"timePeriod": {"period": "2021/2022"}, "values": {"IND1 :: One": "x"}, "filters": {"phase": "P :: Primary", "gender": "F :: Female"}}`),
		}

		Convey("When they are normalised", func() {
			table := Normalize(records, "IND1")

			Convey("Then null valued records are dropped and order is kept", func() {
				So(table.Len(), ShouldEqual, 2)
				So(table.IndicatorID, ShouldEqual, "IND1")
				So(table.Rows[0].TimePeriod, ShouldEqual, "2023/2024")
				So(table.Rows[1].TimePeriod, ShouldEqual, "2021/2022")
				So(table.Rows[1].Value, ShouldResemble, StringValue("x"))
			})

			Convey("Then filter columns appear in order of first appearance", func() {
				So(table.FilterDimensions, ShouldResemble, []string{"gender", "phase"})
				So(table.Columns(), ShouldResemble, []string{
					"time_period", "geographic_level", "location_name", "IND1", "filter_gender", "filter_phase",
				})
			})
		})
	})

	Convey("Given no records", t, func() {
		table := Normalize(nil, "IND1")

		Convey("Then the table is empty", func() {
			So(table.Len(), ShouldEqual, 0)
			So(table.FilterDimensions, ShouldBeEmpty)
		})
	})
}
