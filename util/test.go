package util

import (
	"math"
	"reflect"
	"testing"

	"github.com/hauke96/sigolo/v2"
)

func AssertEqual(t *testing.T, expected any, actual any) {
	if !reflect.DeepEqual(expected, actual) {
		sigolo.Errorb(1, "Expect to be equal.\nExpected: %+v\n----------\nActual  : %+v\n", expected, actual)
		t.Fail()
	}
}

func AssertApprox[T float32 | float64](t *testing.T, expected T, actual T, accuracy T) {
	if math.Abs(float64(expected-actual)) > float64(accuracy) {
		sigolo.Errorb(1, "Expect %v to be within %v of %v", actual, accuracy, expected)
		t.Fail()
	}
}

func AssertNil(t *testing.T, value any) {
	if value != nil && !reflect.ValueOf(value).IsNil() {
		sigolo.Errorb(1, "Expect to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertNotNil(t *testing.T, value any) {
	if value == nil || (reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil()) {
		sigolo.Errorb(1, "Expect to not be 'nil'")
		t.Fail()
	}
}

func AssertTrue(t *testing.T, value bool) {
	if !value {
		sigolo.Errorb(1, "Expect to be 'true' but was 'false'")
		t.Fail()
	}
}

func AssertFalse(t *testing.T, value bool) {
	if value {
		sigolo.Errorb(1, "Expect to be 'false' but was 'true'")
		t.Fail()
	}
}
