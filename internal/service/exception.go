package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const stackPkgPath = "github.com/pkg/errors"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// exceptionDetails returns the concrete type and the trace of an error value.
// Anything that is not a usable error yields empty strings.
func exceptionDetails(v any) (typ, trace string) {
	defer func() {
		if recover() != nil {
			typ, trace = "", ""
		}
	}()

	err, ok := v.(error)
	if !ok || isNil(err) {
		return "", ""
	}

	return exceptionType(err), exceptionTrace(err)
}

// exceptionType skips the stack and message wrappers of pkg/errors and names the error they carry.
func exceptionType(err error) string {
	for {
		typ := reflect.TypeOf(err)
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.PkgPath() != stackPkgPath {
			break
		}
		cause := errors.Unwrap(err)
		if cause == nil {
			break
		}
		err = cause
	}
	return reflect.TypeOf(err).String()
}

// exceptionTrace prefers a captured call stack and falls back to the chain of wrapped errors.
func exceptionTrace(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		if frames := st.StackTrace(); len(frames) > 0 {
			return strings.TrimLeft(fmt.Sprintf("%+v", frames), "\n")
		}
	}

	var b strings.Builder
	for i := 0; err != nil; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "#%d %T: %s", i, err, err.Error())
		err = errors.Unwrap(err)
	}
	return b.String()
}

func isNil(err error) bool {
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
