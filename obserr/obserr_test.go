package obserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsNew(t *testing.T) {
	err := errors.New("lit")
	e := &Error{
		orig: err,
		err:  err,
		vals: make(map[string]interface{}),
	}

	assert.Equal(t, e, New("lit"))
	assert.Equal(t, e, New(errors.New("lit")))
	assert.Equal(t, e, New(e))
	assert.Equal(t, "1", New(1).Error())
}

func TestErrorsVals(t *testing.T) {
	e := New("oh?")

	assert.Equal(t, nil, e.Get("foo"))

	e.Set("key", 2)
	assert.Equal(t, 2, e.Get("key"))
	e.Set("key", 3)
	assert.Equal(t, 3, e.Get("key"))

	e.Set("a", 9, "b", 8, "c", 7)
	assert.Equal(t, 9, e.Get("a"))
	assert.Equal(t, 8, e.Get("b"))
	assert.Equal(t, 7, e.Get("c"))
	assert.Equal(t, e.vals, e.Vals())
}

func TestErrorsAnnotate(t *testing.T) {
	e := New("that").Annotate("see")
	assert.Equal(t, "see: that", e.Error())
	e.Annotate(errors.New("love to"))
	assert.Equal(t, "love to: see: that", e.Error())

	e = Annotate(errors.New("actually."), "but")
	assert.Equal(t, "but: actually.", e.Error())
}

func TestErrorsOriginal(t *testing.T) {
	orig := errors.New("original")
	e := Annotate(orig, "wrapped")

	assert.Equal(t, orig, Original(e))
	assert.Equal(t, orig, Original(orig))
	assert.Equal(t, "wrapped: original", e.Error())
}
