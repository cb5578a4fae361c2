// Package schedule decides which browser should open a URL.
//
// A [Config] names two browsers (work and personal), a work-time window, a
// work-day window and optional URL override lists. The decision for a URL at
// a given moment is:
//
//  1. If the URL contains any personal override pattern, use the personal browser.
//  2. Else if it contains any work override pattern, use the work browser.
//  3. Else use the work browser during work time, the personal browser otherwise.
//
// # Work Time
//
// A moment is work time when its weekday lies in the inclusive range
// [work_days.start, work_days.end] and its hour lies in the work-time window.
// When the start hour is at or after the end hour the window is a night shift
// and wraps past midnight:
//
//	day shift   9:00-18:00  hour >= 9 && hour < 18
//	night shift 18:00-9:00  hour >= 18 || hour < 9
//
// Only hours are compared; minutes are validated but otherwise ignored.
// The end hour is always exclusive.
//
// # Fail Closed
//
// A config that fails [Validate] is never work time, so every URL without an
// override goes to the personal browser.
//
// # Layering
//
// [Merge] combines a base Config with a sparse [LocalConfig]: groups present in
// the overlay replace the base group wholesale, override lists are appended.
//
// Everything in this package is a pure function of its arguments and is safe
// for concurrent use.
package schedule
