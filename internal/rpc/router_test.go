package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuvoedward/Bible_reader/internal/schema"
)

type echoInput struct {
	Word  string `json:"word"`
	Times int    `json:"times"`
}

var echoSchema = schema.Object(
	schema.F("word", schema.String().Min(1)),
	schema.F("times", schema.Integer().Min(1).Optional()),
)

func newTestRouter(calls *int) *Router {
	r := New()
	r.Register("test",
		Query("echo", echoSchema, func(_ context.Context, in echoInput) (string, error) {
			*calls++
			return in.Word, nil
		}).Describe("returns the word"),
		Mutation("fail", schema.Object(), func(_ context.Context, _ struct{}) (string, error) {
			*calls++
			return "", errors.New("boom")
		}),
	)
	return r
}

func TestCall_Query(t *testing.T) {
	var calls int
	r := newTestRouter(&calls)

	out, err := r.Call(context.Background(), "test.echo", KindQuery, []byte(`{"word":"amen"}`))
	require.NoError(t, err)
	assert.Equal(t, "amen", out)
	assert.Equal(t, 1, calls)
}

func TestCall_InvalidInputSkipsHandler(t *testing.T) {
	var calls int
	r := newTestRouter(&calls)

	_, err := r.Call(context.Background(), "test.echo", KindQuery, []byte(`{"word":"","times":"two"}`))

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"word":  "must be at least 1 characters long",
		"times": "must be an integer",
	}, verr.Map())
	assert.Zero(t, calls)
}

func TestCall_EmptyInputIsEmptyObject(t *testing.T) {
	var calls int
	r := newTestRouter(&calls)

	_, err := r.Call(context.Background(), "test.fail", KindMutation, nil)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, calls)
}

func TestCall_UnknownProcedure(t *testing.T) {
	r := newTestRouter(new(int))

	_, err := r.Call(context.Background(), "test.missing", KindQuery, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCall_WrongKind(t *testing.T) {
	var calls int
	r := newTestRouter(&calls)

	_, err := r.Call(context.Background(), "test.echo", KindMutation, []byte(`{"word":"x"}`))
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = r.Call(context.Background(), "test.fail", KindQuery, nil)
	assert.ErrorIs(t, err, ErrWrongKind)
	assert.Zero(t, calls)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := newTestRouter(new(int))

	assert.Panics(t, func() {
		r.Register("test", Query("echo", echoSchema, func(context.Context, echoInput) (string, error) { return "", nil }))
	})
}

func TestDirectory(t *testing.T) {
	r := newTestRouter(new(int))

	entries := r.Directory()
	require.Len(t, entries, 2)

	assert.Equal(t, "test.echo", entries[0].Name)
	assert.Equal(t, KindQuery, entries[0].Kind)
	assert.Equal(t, "returns the word", entries[0].Description)
	assert.Equal(t, "object", entries[0].Input["type"])

	assert.Equal(t, "test.fail", entries[1].Name)
	assert.Equal(t, KindMutation, entries[1].Kind)
}
