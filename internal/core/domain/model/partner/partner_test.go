package partner_test

import (
	"testing"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRemoteID(t *testing.T, v string) kernel.RemoteID {
	t.Helper()
	id, err := kernel.NewRemoteID(v)
	require.NoError(t, err)
	return id
}

func TestRestorePartner(t *testing.T) {
	id := mustRemoteID(t, "partner-1")
	lastLogin := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("should restore partner with all fields", func(t *testing.T) {
		p, err := partner.RestorePartner(id, "Asha Verma", "asha@example.com", "partner", true, "+91900000001", &lastLogin)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Asha Verma", p.FullName())
		assert.Equal(t, "asha@example.com", p.Email())
		assert.Equal(t, "partner", p.Role())
		assert.True(t, p.IsVerified())
		assert.Equal(t, "+91900000001", p.PhoneNumber())
		assert.Equal(t, &lastLogin, p.LastLogin())
	})

	t.Run("should restore partner without optional fields", func(t *testing.T) {
		p, err := partner.RestorePartner(id, "", "asha@example.com", "partner", false, "", nil)

		require.NoError(t, err)
		assert.Empty(t, p.FullName())
		assert.Empty(t, p.PhoneNumber())
		assert.Nil(t, p.LastLogin())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.RemoteID

		p, err := partner.RestorePartner(invalidID, "Asha", "asha@example.com", "partner", true, "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail without email", func(t *testing.T) {
		p, err := partner.RestorePartner(id, "Asha", "", "partner", true, "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without role", func(t *testing.T) {
		p, err := partner.RestorePartner(id, "Asha", "asha@example.com", "", true, "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestPartner_DisplayName(t *testing.T) {
	id := mustRemoteID(t, "partner-1")

	t.Run("prefers full name", func(t *testing.T) {
		p, _ := partner.RestorePartner(id, "Asha Verma", "asha@example.com", "partner", true, "", nil)
		assert.Equal(t, "Asha Verma", p.DisplayName())
	})

	t.Run("falls back to email", func(t *testing.T) {
		p, _ := partner.RestorePartner(id, "", "asha@example.com", "partner", true, "", nil)
		assert.Equal(t, "asha@example.com", p.DisplayName())
	})
}

func TestPartner_Validate(t *testing.T) {
	t.Run("should fail validation for nil partner", func(t *testing.T) {
		var p *partner.Partner

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, partner.ErrPartnerIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		p := &partner.Partner{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, partner.ErrPartnerIsNotConstructed, err)
	})
}
