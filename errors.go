package heath

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the ledger wraps one of them so
// that callers can test with errors.Is.
var (
	// ErrMissingDate is returned when a day is built without a date.
	ErrMissingDate = errors.New("a date must be given")

	// ErrSyntax is returned for text that does not follow the file grammars.
	ErrSyntax = errors.New("syntax error")

	// ErrShift is the category of invalid shift transitions.
	ErrShift = errors.New("shift error")
	// ErrShiftConsistency is returned when a shift timing rule is broken.
	ErrShiftConsistency = fmt.Errorf("%w: inconsistent shift", ErrShift)

	// ErrDay is the category of invalid day mutations.
	ErrDay = errors.New("day error")
	// ErrDayInconsistency is returned when a shift does not fit in its day.
	ErrDayInconsistency = fmt.Errorf("%w: inconsistent day", ErrDay)
	// ErrPreviousShiftNotCompleted is returned when a shift is added while another is open.
	ErrPreviousShiftNotCompleted = fmt.Errorf("%w: previous shift not completed", ErrDay)

	// ErrMonth is the category of invalid month sequencing.
	ErrMonth = errors.New("month error")
	// ErrMonthPreviousDayNotCompleted is returned when a day is added while a previous one is open.
	ErrMonthPreviousDayNotCompleted = fmt.Errorf("%w: previous day not completed", ErrMonth)
	// ErrMonthDateInconsistency is returned when a day is out of the month or out of sequence.
	ErrMonthDateInconsistency = fmt.Errorf("%w: inconsistent date", ErrMonth)

	// ErrDateInconsistency is returned when a date does not belong to the file it is read from.
	ErrDateInconsistency = errors.New("inconsistent date")

	// ErrProject is the category of project rule violations.
	ErrProject = errors.New("project error")
	// ErrUnknownProject is returned when a project key is not in the registry.
	ErrUnknownProject = fmt.Errorf("%w: unknown project", ErrProject)

	// ErrNoActiveShift is returned by live operations that need an open shift.
	ErrNoActiveShift = errors.New("no ongoing shift")
)
