// Package params converts an earnings input to and from the URL query
// parameters shared between the calculator form and the results page.
package params

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/angelofallars/drivecalc/internal/earnings"
)

const (
	KeyHours   = "hours"
	KeyWeekend = "weekend"
	KeyCar     = "car"
	KeyTimes   = "times"
)

// keyOrder is the order of the keys in an encoded query.
var keyOrder = [...]string{KeyHours, KeyWeekend, KeyCar, KeyTimes}

const (
	weekendYes = "yes"
	weekendNo  = "no"
)

var (
	ErrMissingParameter   = errors.New("missing parameter")
	ErrMalformedParameter = errors.New("malformed parameter")
)

// Error reports the parameter that could not be read. Err is
// ErrMissingParameter or ErrMalformedParameter.
type Error struct {
	Key   string
	Value string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == ErrMissingParameter {
		return fmt.Sprintf("%s: %s", e.Err, e.Key)
	}
	return fmt.Sprintf("%s: %s=%q", e.Err, e.Key, e.Value)
}

func (e *Error) Unwrap() error { return e.Err }

// Encode serializes in into query values. Work times keep their order.
func Encode(in earnings.Input) url.Values {
	v := url.Values{}
	v.Set(KeyHours, strconv.Itoa(in.Hours))
	if in.WeekendWork {
		v.Set(KeyWeekend, weekendYes)
	} else {
		v.Set(KeyWeekend, weekendNo)
	}
	v.Set(KeyCar, string(in.Car))

	times := make([]string, 0, len(in.WorkTimes))
	for _, wt := range in.WorkTimes {
		times = append(times, string(wt))
	}
	if len(times) > 0 {
		v.Set(KeyTimes, strings.Join(times, ","))
	}

	return v
}

// Decode parses query values produced by Encode.
//
// Only transport problems are reported here, as an *Error: a missing key
// wraps ErrMissingParameter, a value that cannot be read wraps
// ErrMalformedParameter. Car categories and work times are passed through
// as given and are checked by [earnings.Validate].
func Decode(v url.Values) (earnings.Input, error) {
	for _, key := range []string{KeyHours, KeyWeekend, KeyCar, KeyTimes} {
		if strings.TrimSpace(v.Get(key)) == "" {
			return earnings.Input{}, &Error{Key: key, Err: ErrMissingParameter}
		}
	}

	hours, err := strconv.Atoi(strings.TrimSpace(v.Get(KeyHours)))
	if err != nil {
		return earnings.Input{}, &Error{Key: KeyHours, Value: v.Get(KeyHours), Err: ErrMalformedParameter}
	}

	var weekendWork bool
	switch v.Get(KeyWeekend) {
	case weekendYes:
		weekendWork = true
	case weekendNo:
		weekendWork = false
	default:
		return earnings.Input{}, &Error{Key: KeyWeekend, Value: v.Get(KeyWeekend), Err: ErrMalformedParameter}
	}

	var workTimes []earnings.WorkTime
	for _, id := range strings.Split(v.Get(KeyTimes), ",") {
		workTimes = append(workTimes, earnings.WorkTime(id))
	}

	return earnings.Input{
		Hours:       hours,
		WorkTimes:   workTimes,
		WeekendWork: weekendWork,
		Car:         earnings.CarCategory(v.Get(KeyCar)),
	}, nil
}

// Query returns the encoded query string of in with the keys in the order
// hours, weekend, car, times.
func Query(in earnings.Input) string {
	v := Encode(in)

	var buf strings.Builder
	for _, k := range keyOrder {
		value, ok := v[k]
		if !ok {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(k))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(value[0]))
	}
	return buf.String()
}
