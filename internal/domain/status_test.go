package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/dry-county-map/internal/domain"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Dry", "Moist", "Wet"} {
		status, err := domain.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.Status(valid), status)
	}

	for _, invalid := range []string{"", "wet", "Unknown", "Damp"} {
		_, err := domain.ParseStatus(invalid)
		assert.Error(t, err, "status %q should be rejected", invalid)
	}
}

func TestStateLookups(t *testing.T) {
	fips, ok := domain.StateFIPS("Arkansas")
	require.True(t, ok)
	assert.Equal(t, "05", fips)

	name, ok := domain.StateName("05")
	require.True(t, ok)
	assert.Equal(t, "Arkansas", name)

	_, ok = domain.StateName("99")
	assert.False(t, ok)

	_, ok = domain.StateFIPS("Atlantis")
	assert.False(t, ok)
}

func TestFetchError_Unwrap(t *testing.T) {
	err := &domain.FetchError{URL: "https://example.org", Err: domain.ErrNotImplemented}
	assert.True(t, errors.Is(err, domain.ErrNotImplemented))
	assert.Contains(t, err.Error(), "https://example.org")
}

func TestMismatchError_Message(t *testing.T) {
	err := &domain.MismatchError{Unresolved: 3, Total: 10, Threshold: 0.2}
	assert.Contains(t, err.Error(), "3 of 10")
}
