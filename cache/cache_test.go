package cache

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func copySlice(s []int) []int {
	return append([]int(nil), s...)
}

func TestFIFO(t *testing.T) {
	Convey("Given a FIFO cache with capacity 3", t, func() {
		c, err := NewFIFO[int](3)
		So(err, ShouldBeNil)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		Convey("When a fourth entry is inserted", func() {
			c.Put("d", 4)

			Convey("Then exactly the first inserted entry is evicted", func() {
				_, ok := c.Get("a")
				So(ok, ShouldBeFalse)
				So(c.keys(), ShouldResemble, []string{"b", "c", "d"})
				So(c.Len(), ShouldEqual, 3)
			})
		})

		Convey("When the oldest entry is read before the fourth insert", func() {
			v, ok := c.Get("a")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1)
			c.Put("d", 4)

			Convey("Then reads do not protect it from eviction", func() {
				_, ok := c.Get("a")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When an existing key is replaced", func() {
			c.Put("a", 10)
			c.Put("d", 4)

			Convey("Then it keeps its original insertion position", func() {
				_, ok := c.Get("a")
				So(ok, ShouldBeFalse)
				So(c.keys(), ShouldResemble, []string{"b", "c", "d"})
			})
		})

		Convey("When the cache is cleared", func() {
			c.clear()
			So(c.Len(), ShouldEqual, 0)
			So(c.keys(), ShouldBeEmpty)
		})
	})

	Convey("Given a FIFO cache of 50 entries", t, func() {
		var evicted []string
		c, err := NewFIFO[int](50, withEvictionCallback[int](func(key string, _ int) {
			evicted = append(evicted, key)
		}))
		So(err, ShouldBeNil)
		for i := 0; i < 50; i++ {
			c.Put(fmt.Sprintf("q%d", i), i)
		}

		Convey("When the 51st distinct entry is inserted", func() {
			c.Put("q50", 50)

			Convey("Then only the first inserted entry is evicted", func() {
				So(evicted, ShouldResemble, []string{"q0"})
				So(c.Len(), ShouldEqual, 50)
				for i := 1; i <= 50; i++ {
					_, ok := c.Get(fmt.Sprintf("q%d", i))
					So(ok, ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given a FIFO cache storing copies", t, func() {
		c, err := NewFIFO[[]int](2, WithCopy[[]int](copySlice))
		So(err, ShouldBeNil)

		original := []int{1, 2, 3}
		c.Put("k", original)

		Convey("Then mutating the inserted value does not change the cache", func() {
			original[0] = 99
			v, _ := c.Get("k")
			So(v, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Then mutating a returned value does not change the cache", func() {
			v, _ := c.Get("k")
			v[0] = 99
			again, _ := c.Get("k")
			So(again, ShouldResemble, []int{1, 2, 3})
		})
	})

	Convey("A FIFO cache cannot be created without capacity", t, func() {
		c, err := NewFIFO[int](0)
		So(c, ShouldBeNil)
		So(err, ShouldNotBeNil)
	})
}

func TestLRU(t *testing.T) {
	Convey("Given an LRU cache with capacity 2", t, func() {
		c, err := NewLRU[string](2)
		So(err, ShouldBeNil)
		c.Put("a", "A")
		c.Put("b", "B")

		Convey("When the oldest entry is used before a third insert", func() {
			_, ok := c.Get("a")
			So(ok, ShouldBeTrue)
			c.Put("c", "C")

			Convey("Then the least recently used entry is evicted instead", func() {
				_, ok := c.Get("b")
				So(ok, ShouldBeFalse)
				v, ok := c.Get("a")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "A")
				So(c.Len(), ShouldEqual, 2)
			})
		})

		Convey("When a third entry is inserted without reads", func() {
			c.Put("c", "C")

			Convey("Then the first entry is evicted", func() {
				_, ok := c.Get("a")
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestMetrics(t *testing.T) {
	Convey("Given a cache with metrics enabled", t, func() {
		reg := prometheus.NewRegistry()
		c, err := NewFIFO[int](1, WithMetrics[int](reg, "query"))
		So(err, ShouldBeNil)

		c.Put("a", 1)
		c.Get("a")
		c.Get("missing")
		c.Put("b", 2)

		Convey("Then hits, misses, evictions and size are recorded", func() {
			So(testutil.ToFloat64(c.metrics.hits), ShouldEqual, float64(1))
			So(testutil.ToFloat64(c.metrics.misses), ShouldEqual, float64(1))
			So(testutil.ToFloat64(c.metrics.evictions), ShouldEqual, float64(1))
			So(testutil.ToFloat64(c.metrics.size), ShouldEqual, float64(1))
		})

		Convey("Then registering the same cache name twice fails", func() {
			_, err := NewLRU[int](1, WithMetrics[int](reg, "query"))
			So(err, ShouldNotBeNil)
		})
	})
}
