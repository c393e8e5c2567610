// Package weekling provides ISO 8601 week-date values: Year, Week and
// WeekDay.
//
// All values are immutable and comparable with ==. Constructors validate
// their input once; every value they return is valid for its lifetime.
// Navigation (Next, Previous, Add, Sub) crosses week and year boundaries,
// taking 53-week years into account:
//
//	w := weekling.MustWeek(2015, 52)
//	w.Next()            // 2015-W53
//	w.Next().Next()     // 2016-W01
//	w.Friday().ToDate() // 2015-12-25
//
// Calendar dates convert with YearOf, WeekOf and WeekDayOf
package weekling
