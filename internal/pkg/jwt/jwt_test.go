package jwt

import (
	"testing"

	"github.com/glowlabs/salon-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessTokenCarriesClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	tenantID := "tenant-1"
	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("subject-1", &tenantID, &employeeID, nil, user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	sub, _ := decoded.Get("sub")
	assert.Equal(t, "subject-1", sub)

	gotTenant, _ := decoded.Get("tenant_id")
	assert.Equal(t, "tenant-1", gotTenant)

	gotEmployee, _ := decoded.Get("employee_id")
	assert.Equal(t, "emp-1", gotEmployee)

	gotRole, _ := decoded.Get("role")
	assert.Equal(t, "manager", gotRole)

	gotType, _ := decoded.Get("type")
	assert.Equal(t, "access", gotType)
}

func TestGenerateAccessTokenRejectsBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("subject-1", nil, nil, nil, user.RoleOwner)
	assert.Error(t, err)
}

func TestSSETokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, expiresIn, err := svc.GenerateSSEToken("client-7")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	subject, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-7", subject)
}

func TestValidateSSETokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, _, err := svc.GenerateAccessToken("subject-1", nil, nil, nil, user.RoleStaff)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestValidateSSETokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "15m")
	verifier := NewJWTService("secret-b", "15m")

	token, _, err := issuer.GenerateSSEToken("client-7")
	require.NoError(t, err)

	_, err = verifier.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m")

	token, _, err := svc.GenerateSSEToken("client-7")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}
