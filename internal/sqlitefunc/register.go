// Package sqlitefunc is the database extension glue described by
// spec.md §1/§6: a scalar function that binds the jsoncursor
// navigator into a running SQLite connection, the way the original
// Nordth/JsonSqlite C extension's sqlitejson.c binds jsonget.c's
// cursor API into sqlite3_create_function.
//
// Unlike that C extension — and unlike most Go JSON helpers, which
// parse the whole document before looking anything up — Register
// only ever touches the subtree named by the path arguments, because
// it calls straight through to jsoncursor's on-demand navigator.
package sqlitefunc

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"modernc.org/sqlite"

	"github.com/elantcev/jsoncursor/jsoncursor"
)

// FunctionName is the SQL name the scalar function is installed
// under, matching the original extension's json_get(doc, ...).
const FunctionName = "json_get"

// ErrNoDocument is returned when json_get is called with no
// arguments at all (the original C extension reports a SQLite error
// in this case rather than returning NULL).
var ErrNoDocument = errors.New("jsoncursor: json_get requires at least a document argument")

// ErrUnsupportedArg is returned when a path argument is neither an
// integer (for MoveIndex) nor text (for MoveKey).
var ErrUnsupportedArg = errors.New("jsoncursor: json_get path arguments must be integer or text")

// Register installs json_get(doc, arg1, arg2, ...) as a deterministic
// scalar function, visible to every connection opened afterward
// through modernc.org/sqlite's driver. logger may be nil, in which
// case the standard logrus logger is used.
func Register(logger logrus.FieldLogger) error {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return sqlite.RegisterDeterministicScalarFunction(
		FunctionName,
		-1, // variadic: one document plus any number of path segments
		func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			return jsonGet(logger, args)
		},
	)
}

// jsonGet implements the json_get(doc, arg1, arg2, ...) contract from
// spec.md §6: walk the root cursor of doc with one MoveIndex per
// integer argument and one MoveKey per text argument, in order. Any
// INVALID cursor encountered along the way — or as the final result —
// yields a nil (SQL NULL) result rather than an error; only a
// malformed call (no document, or a path argument of an unsupported
// type) is a Go error.
func jsonGet(logger logrus.FieldLogger, args []driver.Value) (driver.Value, error) {
	if len(args) == 0 {
		return nil, ErrNoDocument
	}

	doc, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: document argument must be text", ErrUnsupportedArg)
	}

	cur := jsoncursor.ParseString(doc)
	for _, arg := range args[1:] {
		switch v := arg.(type) {
		case int64:
			cur = cur.MoveIndex(int(v))
		case string:
			cur = cur.MoveKey(v)
		default:
			return nil, fmt.Errorf("%w: got %T", ErrUnsupportedArg, arg)
		}
		if cur.Type() == jsoncursor.Invalid {
			logger.WithFields(logrus.Fields{
				"function": FunctionName,
				"args":     len(args) - 1,
			}).Debug("json_get path walk hit INVALID cursor")
			return nil, nil
		}
	}

	return mapCursorToDriverValue(cur)
}

// mapCursorToDriverValue implements spec.md §6's result mapping:
// BOOLEAN/INTEGER -> integer, NULL -> nil, DOUBLE -> double,
// STRING -> decoded text, ARRAY/OBJECT -> raw substring, anything
// else -> nil.
func mapCursorToDriverValue(cur jsoncursor.Cursor) (driver.Value, error) {
	switch cur.Type() {
	case jsoncursor.Boolean, jsoncursor.Integer:
		v, _ := cur.Int()
		return v, nil
	case jsoncursor.Null:
		return nil, nil
	case jsoncursor.Double:
		v, _ := cur.Double()
		return v, nil
	case jsoncursor.String:
		buf := make([]byte, maxStringLen(cur))
		n, _ := cur.String(buf)
		return string(buf[:n]), nil
	case jsoncursor.Array, jsoncursor.Object:
		raw, ok := cur.Raw()
		if !ok {
			return nil, nil
		}
		return string(raw), nil
	default:
		return nil, nil
	}
}

// maxStringLen sizes a decode buffer generously enough to avoid
// truncating the common case in one pass: the decoded form of a JSON
// string is never longer than its raw (quoted) source text.
func maxStringLen(cur jsoncursor.Cursor) int {
	raw, ok := cur.Raw()
	if !ok {
		return 0
	}
	return len(raw)
}
