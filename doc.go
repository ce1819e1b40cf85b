// Package heath is a personal work-hours ledger.
//
// Work is recorded in plain text files, one per month, each line describing
// the shifts of one day:
//
//	7. Project1 8:00 - 12:00, Lunch 0:30; Project2 12:00 - 17:00 # a comment
//
// Year files list the non-working dates of a year and the projects file
// describes the projects. A [Folder] loads those files into a [Ledger], which
// checks that shifts don't overlap, that at most one shift is open at a time,
// that no working day is skipped and that all-day projects fill their day on
// their own.
//
// Reporting windows over the ledger are [TimePeriod] values. They compute
// worked hours, the balance against an eight hour day, per-project durations
// (optionally rounded to half hours by [LosslessRound]) and the report rows
// rendered by the renderer package.
package heath
