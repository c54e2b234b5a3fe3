package digitalsee_test

import (
	"errors"
	"fmt"
	"testing"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("code and message of an application error", func(t *testing.T) {
		t.Parallel()

		err := digitalsee.Errorf(digitalsee.ENOTFOUND, "document %q not found", "doc1.xml")

		assert.Equal(t, digitalsee.ENOTFOUND, digitalsee.ErrorCode(err))
		assert.Equal(t, `document "doc1.xml" not found`, digitalsee.ErrorMessage(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", digitalsee.Errorf(digitalsee.EINVALID, "bad input"))

		assert.Equal(t, digitalsee.EINVALID, digitalsee.ErrorCode(err))
		assert.Equal(t, "bad input", digitalsee.ErrorMessage(err))
	})

	t.Run("non-application errors are internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("disk on fire")

		assert.Equal(t, digitalsee.EINTERNAL, digitalsee.ErrorCode(err))
		assert.Equal(t, "Internal error.", digitalsee.ErrorMessage(err))
	})

	t.Run("nil error has empty code and message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", digitalsee.ErrorCode(nil))
		assert.Equal(t, "", digitalsee.ErrorMessage(nil))
	})
}
