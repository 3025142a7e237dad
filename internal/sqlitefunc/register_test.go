package sqlitefunc

import (
	"database/sql"
	"database/sql/driver"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestJsonGetNoDocument(t *testing.T) {
	_, err := jsonGet(silentLogger(), nil)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestJsonGetDocumentMustBeText(t *testing.T) {
	_, err := jsonGet(silentLogger(), []driver.Value{int64(1)})
	assert.ErrorIs(t, err, ErrUnsupportedArg)
}

func TestJsonGetRootScalar(t *testing.T) {
	v, err := jsonGet(silentLogger(), []driver.Value{`42`})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestJsonGetKeyPath(t *testing.T) {
	doc := `{"a": {"b": [10, 20, 30]}}`
	v, err := jsonGet(silentLogger(), []driver.Value{doc, "a", "b", int64(1)})
	assert.NoError(t, err)
	assert.Equal(t, int64(20), v)
}

func TestJsonGetMissingKeyYieldsNilNotError(t *testing.T) {
	doc := `{"a": 1}`
	v, err := jsonGet(silentLogger(), []driver.Value{doc, "nope"})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestJsonGetUnsupportedPathArgType(t *testing.T) {
	doc := `{"a": 1}`
	_, err := jsonGet(silentLogger(), []driver.Value{doc, 3.14})
	assert.ErrorIs(t, err, ErrUnsupportedArg)
}

func TestJsonGetStringResultIsDecoded(t *testing.T) {
	doc := `{"greeting": "hi\tthere"}`
	v, err := jsonGet(silentLogger(), []driver.Value{doc, "greeting"})
	assert.NoError(t, err)
	assert.Equal(t, "hi\tthere", v)
}

func TestJsonGetContainerResultIsRawSubstring(t *testing.T) {
	doc := `{"a": [1, 2, 3]}`
	v, err := jsonGet(silentLogger(), []driver.Value{doc, "a"})
	assert.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", v)
}

func TestJsonGetNullResult(t *testing.T) {
	doc := `{"a": null}`
	v, err := jsonGet(silentLogger(), []driver.Value{doc, "a"})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

var registerForSQLOnce sync.Once

// TestRegisterEndToEnd drives json_get through an actual
// modernc.org/sqlite connection, not just the unexported jsonGet
// helper: it exercises Register's wiring into the driver and the
// driver.Value types sqlite actually hands the callback (an int64
// integer literal alongside plain string literal arguments), matching the
// round-trip spec.md's testable properties require.
func TestRegisterEndToEnd(t *testing.T) {
	registerForSQLOnce.Do(func() {
		err := Register(silentLogger())
		assert.NoError(t, err)
	})

	db, err := sql.Open("sqlite", ":memory:")
	assert.NoError(t, err)
	defer db.Close()

	var got int64
	err = db.QueryRow(`SELECT json_get('{"a":1}', 'a')`).Scan(&got)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)

	var gotStr string
	err = db.QueryRow(`SELECT json_get('{"a":{"b":[10,20,30]}}', 'a', 'b', 1)`).Scan(&gotStr)
	assert.NoError(t, err)
	assert.Equal(t, "20", gotStr)

	var gotNull sql.NullString
	err = db.QueryRow(`SELECT json_get('{"a":1}', 'missing')`).Scan(&gotNull)
	assert.NoError(t, err)
	assert.False(t, gotNull.Valid)
}
