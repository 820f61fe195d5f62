package kimai

import (
	"net/url"
	"strconv"
	"time"
)

// TimesheetFilter contains all possible timesheet search parameters.
// Nil fields are omitted from the query string.
type TimesheetFilter struct {
	User     *int64
	Customer *int64
	Project  *int64
	Activity *int64
	Begin    *time.Time
	End      *time.Time
	Exported *bool
}

// Values encodes the filter as URL query parameters. Timestamps use the
// local-time wire format without a timezone suffix.
func (f TimesheetFilter) Values() url.Values {
	values := url.Values{}
	setInt(values, "user", f.User)
	setInt(values, "customer", f.Customer)
	setInt(values, "project", f.Project)
	setInt(values, "activity", f.Activity)
	if f.Begin != nil {
		values.Set("begin", FormatDateTime(*f.Begin))
	}
	if f.End != nil {
		values.Set("end", FormatDateTime(*f.End))
	}
	if f.Exported != nil {
		if *f.Exported {
			values.Set("exported", "1")
		} else {
			values.Set("exported", "0")
		}
	}
	return values
}

func setInt(values url.Values, key string, value *int64) {
	if value != nil {
		values.Set(key, strconv.FormatInt(*value, 10))
	}
}
