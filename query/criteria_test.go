package query

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCriteriaKey(t *testing.T) {
	Convey("Given two criteria differing only in ordering", t, func() {
		a := NewCriteria("ds", "IND1", []string{"NAT", "REG"}, []string{"2024/2025", "2023/2024"},
			map[string]Filter{"gender": In("M", "F"), "phase": In("P")})
		b := NewCriteria("ds", "IND1", []string{"REG", "NAT", "NAT"}, []string{"2023/2024", "2024/2025"},
			map[string]Filter{"phase": In("P"), "gender": In("F", "M", "F")})

		Convey("Then their keys are equal", func() {
			So(a.Key(), ShouldEqual, b.Key())
		})

		Convey("Then the set-like fields are sorted and de-duplicated", func() {
			So(b.GeographicLevels, ShouldResemble, []string{"NAT", "REG"})
			So(b.TimePeriods, ShouldResemble, []string{"2023/2024", "2024/2025"})
			So(b.Filters["gender"].Values, ShouldResemble, []string{"F", "M"})
		})
	})

	Convey("Given criteria built by hand with unsorted fields", t, func() {
		a := Criteria{DatasetID: "ds", IndicatorID: "IND1", TimePeriods: []string{"b", "a"}}
		b := Criteria{DatasetID: "ds", IndicatorID: "IND1", TimePeriods: []string{"a", "b"}}

		Convey("Then their keys are still equal", func() {
			So(a.Key(), ShouldEqual, b.Key())
		})
	})

	Convey("Given criteria that differ in substance", t, func() {
		base := NewCriteria("ds", "IND1", []string{"NAT"}, []string{"2024"}, nil)

		Convey("Then the keys differ", func() {
			So(base.Key(), ShouldNotEqual, NewCriteria("ds", "IND2", []string{"NAT"}, []string{"2024"}, nil).Key())
			So(base.Key(), ShouldNotEqual, NewCriteria("ds", "IND1", []string{"REG"}, []string{"2024"}, nil).Key())
			So(base.Key(), ShouldNotEqual, NewCriteria("ds", "IND1", []string{"NAT"}, []string{"2024"},
				map[string]Filter{"gender": In("M")}).Key())
			So(NewCriteria("ds", "IND1", nil, []string{"2024"}, map[string]Filter{"gender": In("M")}).Key(),
				ShouldNotEqual, NewCriteria("ds", "IND1", nil, []string{"2024"}, map[string]Filter{"gender": Eq("M")}).Key())
		})
	})
}

func TestCriteriaValidate(t *testing.T) {
	Convey("Complete criteria are valid", t, func() {
		c := NewCriteria("ds", "IND1", []string{"NAT"}, []string{"2024"}, map[string]Filter{"gender": Eq("M")})
		So(c.Validate(), ShouldBeNil)
	})

	Convey("Incomplete criteria are rejected", t, func() {
		cases := map[string]Criteria{
			"dataset":   NewCriteria("", "IND1", nil, []string{"2024"}, nil),
			"indicator": NewCriteria("ds", "", nil, []string{"2024"}, nil),
			"periods":   NewCriteria("ds", "IND1", nil, nil, nil),
		}
		for field, c := range cases {
			err := c.Validate()
			var validationErr *ValidationError
			So(errors.As(err, &validationErr), ShouldBeTrue)
			So(validationErr.Field, ShouldEqual, field)
			So(validationErr.Code(), ShouldEqual, 400)
		}
	})

	Convey("Malformed filters are rejected", t, func() {
		eq := NewCriteria("ds", "IND1", nil, []string{"2024"}, map[string]Filter{"gender": {Operator: OperatorEq, Values: []string{"M", "F"}}})
		So(eq.Validate(), ShouldNotBeNil)

		op := NewCriteria("ds", "IND1", nil, []string{"2024"}, map[string]Filter{"gender": {Operator: "like", Values: []string{"M"}}})
		err := op.Validate()
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unsupported operator like")
	})
}
