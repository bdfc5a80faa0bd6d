package service

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Egor213/dblogger/internal/domain"
)

const arrayToken = "(Array)"

// Interpolate replaces every "{key}" in message with the string form of logCtx[key].
// Placeholders without a matching key are left as is. Replaced text is not rescanned,
// and when placeholders overlap the longest key wins.
func Interpolate(message string, logCtx domain.Context) string {
	if len(logCtx) == 0 || !strings.Contains(message, "{") {
		return message
	}

	keys := make([]string, 0, len(logCtx))
	for k := range logCtx {
		if strings.Contains(message, "{"+k+"}") {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return message
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", Stringify(logCtx[k]))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// Stringify renders a context value for a message: Stringers and errors use
// their own text, lists and maps become "(Array)" and other composite values
// become their type name in parentheses. Pointers render as the value they
// point to, nil pointers as "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return callString(v, t.String)
	case error:
		return callString(v, t.Error)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return Stringify(rv.Elem().Interface())
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return arrayToken
	case reflect.Struct, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return typeToken(v)
	}
	return fmt.Sprint(v)
}

func callString(v any, fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = typeToken(v)
		}
	}()
	return fn()
}

func typeToken(v any) string {
	return "(" + typeName(v) + ")"
}

func typeName(v any) string {
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.String()
}
