package common

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) Object {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var obj Object
	require.NoError(t, dec.Decode(&obj))
	return obj
}

func TestLookup(t *testing.T) {
	obj := decodeObject(t, `{
		"metadata": {"application": {"project": {"title": "Clean Water", "description": null}, "recipient": ""}},
		"list": [1, 2]
	}`)

	tests := []struct {
		name   string
		path   []string
		wantOk bool
		want   any
	}{
		{name: "full path", path: []string{"metadata", "application", "project", "title"}, wantOk: true, want: "Clean Water"},
		{name: "missing leaf", path: []string{"metadata", "application", "project", "logo"}},
		{name: "null leaf", path: []string{"metadata", "application", "project", "description"}},
		{name: "missing middle", path: []string{"metadata", "round", "name"}},
		{name: "walk through non object", path: []string{"list", "0"}},
		{name: "empty path returns value", path: nil, wantOk: true, want: obj},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(obj, tt.path...)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestLookup_NilRoot(t *testing.T) {
	_, ok := Lookup(nil, "metadata")
	assert.False(t, ok)
}

func TestLookupString(t *testing.T) {
	obj := decodeObject(t, `{"a": {"title": "x", "empty": "", "number": 5}}`)

	s, ok := LookupString(obj, "a", "title")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = LookupString(obj, "a", "empty")
	assert.False(t, ok)

	_, ok = LookupString(obj, "a", "number")
	assert.False(t, ok)
}

func TestRequireFields(t *testing.T) {
	obj := decodeObject(t, `{"id": "0xabc", "numericId": 42, "amountUSD": 12.345, "votes": 7, "negative": -1, "fraction": 1.5, "quoted": "3", "flag": true}`)

	id, err := RequireString("project", obj, "id")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", id)

	numericId, err := RequireString("project", obj, "numericId")
	require.NoError(t, err)
	assert.Equal(t, "42", numericId)

	amount, err := RequireDecimal("project", obj, "amountUSD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.345").Equal(amount))

	votes, err := RequireUint("project", obj, "votes")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), votes)

	quoted, err := RequireUint("project", obj, "quoted")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), quoted)

	_, err = RequireDecimal("project", obj, "absent")
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "project", missing.Entity)
	assert.Equal(t, "absent", missing.Field)
	assert.Equal(t, `project is missing required field "absent"`, err.Error())

	for _, field := range []string{"negative", "fraction", "flag"} {
		_, err = RequireUint("project", obj, field)
		var invalid *InvalidFieldError
		assert.True(t, errors.As(err, &invalid), field)
	}

	_, err = RequireString("vote", obj, "flag")
	var invalid *InvalidFieldError
	assert.True(t, errors.As(err, &invalid))
}

func TestOptionalHelpers(t *testing.T) {
	obj := decodeObject(t, `{"evidence": {"rawScore": "21.5"}, "other": {"rawScore": "n/a"}}`)

	assert.True(t, decimal.RequireFromString("21.5").Equal(OptionalDecimal(obj, "evidence", "rawScore")))
	assert.True(t, OptionalDecimal(obj, "other", "rawScore").IsZero())
	assert.True(t, OptionalDecimal(obj, "missing", "rawScore").IsZero())
	assert.Equal(t, "", OptionalString(obj, "evidence", "status"))
}
