package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindCodes(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   400,
		KindUnauthorized: 401,
		KindNotFound:     404,
		KindConflict:     409,
		KindInternal:     500,
	}
	for k, code := range cases {
		assert.Equal(t, code, k.Code(), k.String())
	}
}

func TestFromKeepsTypedErrors(t *testing.T) {
	nf := NotFound("No user found")
	wrapped := fmt.Errorf("tx: %w", nf)

	got := From(wrapped)
	assert.Equal(t, KindNotFound, KindOf(got))
	assert.Equal(t, "No user found", Message(got))
	assert.Nil(t, From(nil))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:3306: connection refused")
	err := From(cause)

	assert.True(t, Is(err, KindInternal))
	assert.Equal(t, MsgInternal, Message(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, MsgInternal, Message(cause))
}
