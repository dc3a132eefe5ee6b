package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable labels for values that have no name of their own, such as a
// simulation run started without one. Labels are memoized by key (usually a
// pointer), so the same value keeps its label for the life of the process, but
// not across processes. The memo is never pruned, which is fine for the small
// number of things anyone wants to label.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	value := reflect.ValueOf(obj)
	if !value.IsValid() || (value.Kind() == reflect.Ptr && value.IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
