package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeFields(t *testing.T) {
	lhs := Fields{"key": "value"}
	rhs := Fields{"key2": "value2"}

	merged := MergeFields(lhs, rhs)
	assert.Equal(t, "value", merged["key"])
	assert.Equal(t, "value2", merged["key2"])
}

func TestDupeFields(t *testing.T) {
	lhs := Fields{"key": "value"}
	duped := lhs.Dupe()
	lhs["key"] = "value2"
	assert.Equal(t, "value", duped["key"])
}

type testError struct {
	message string
}

func (te testError) Error() string {
	return te.message
}

func TestWithError(t *testing.T) {
	fields := Fields{"key": "value"}
	fields = fields.WithError(testError{"message"})
	assert.Equal(t, "message", fields["error_message"])
	assert.Equal(t, "value", fields["key"])
}
