package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCategorize(t *testing.T) {
	cause := errors.New("exit status 128")

	err := domain.Categorize(domain.ErrCloneFailed, cause)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.ErrorIs(t, err, cause)

	err = zerr.With(err, "folder", "a")
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "exit status 128")
}

func TestCategorize_NilCause(t *testing.T) {
	err := domain.Categorize(domain.ErrInstallFailed, nil)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)

	err = zerr.With(err, "failures", 2)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestCategorize_AlreadyCategorized(t *testing.T) {
	inner := domain.Categorize(domain.ErrMergeConflict, errors.New("CONFLICT"))
	err := domain.Categorize(domain.ErrMergeConflict, inner)
	assert.Equal(t, inner, err)
}
