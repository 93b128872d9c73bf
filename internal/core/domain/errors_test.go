package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrStoreUnavailable,
		ErrNothingDeleted,
		ErrNotImplemented,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}

func TestErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("open database: %w", ErrStoreUnavailable)
	assert.True(t, errors.Is(wrapped, ErrStoreUnavailable))

	wrapped = fmt.Errorf("delete items for list 3: %w", ErrNothingDeleted)
	assert.True(t, errors.Is(wrapped, ErrNothingDeleted))
}
