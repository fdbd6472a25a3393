package testutil

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Logger forwards log calls to the test log so failures carry context.
type Logger struct {
	TB testing.TB
}

func (l Logger) Enable(bool) {}

func (l Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }

func (l Logger) log(level, msg string, args []interface{}) {
	l.TB.Helper()
	if len(args) > 0 {
		l.TB.Logf("%s: %s %v", level, msg, args)
		return
	}
	l.TB.Logf("%s: %s", level, msg)
}

func MarshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("MarshallObj() failed: %v", err)
	}
	return data
}

// JSONBytesEqual compares two JSON documents structurally, ignoring key
// order; top-level arrays are compared as unordered sets.
func JSONBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	t.Helper()
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}
