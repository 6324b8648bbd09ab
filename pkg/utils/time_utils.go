package utils

import "time"

// Taiwan time (CST, +08:00) for display timestamps on submissions.
var twLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Taipei"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSecondsTW(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(twLoc)
}

func FormatRFC3339TW(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(twLoc).Format(time.RFC3339)
}
