package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/teampay/chain/testutil/keeper"
	"github.com/teampay/chain/testutil/sample"
	"github.com/teampay/chain/x/badges/types"
)

func TestRegister(t *testing.T) {
	k, ctx := keepertest.BadgesKeeper(t)
	owner := sample.AccAddressBytes()

	credential, err := k.Register(ctx, owner, "dev-ayna")
	require.NoError(t, err)
	require.Equal(t, types.CredentialID("dev-ayna"), credential)

	require.True(t, k.HasBadge(ctx, credential, "dev-ayna"))
	require.False(t, k.HasBadge(ctx, credential, "dev-bela"))

	resolved, err := k.GetBadgeOwner(ctx, credential)
	require.NoError(t, err)
	require.Equal(t, owner, resolved)
}

func TestRegisterUniqueHandle(t *testing.T) {
	k, ctx := keepertest.BadgesKeeper(t)

	_, err := k.Register(ctx, sample.AccAddressBytes(), "dev-ayna")
	require.NoError(t, err)

	// handles are globally unique regardless of owner
	_, err = k.Register(ctx, sample.AccAddressBytes(), "dev-ayna")
	require.ErrorIs(t, err, types.ErrBadgeExists)

	_, err = k.Register(ctx, sample.AccAddressBytes(), "")
	require.ErrorIs(t, err, types.ErrInvalidHandle)
}

func TestVerifyProofFailsClosed(t *testing.T) {
	k, ctx := keepertest.BadgesKeeper(t)
	owner := sample.AccAddressBytes()

	credential, err := k.Register(ctx, owner, "dev-ayna")
	require.NoError(t, err)

	good := types.Proof{Credential: credential, Handle: "dev-ayna", Owner: owner.String()}
	handle, err := k.VerifyProof(ctx, good, credential)
	require.NoError(t, err)
	require.Equal(t, "dev-ayna", handle)

	cases := map[string]struct {
		proof    types.Proof
		expected string
	}{
		"credential mismatch": {
			proof:    types.Proof{Credential: types.CredentialID("dev-bela"), Handle: "dev-ayna", Owner: owner.String()},
			expected: credential,
		},
		"unknown credential": {
			proof:    types.Proof{Credential: types.CredentialID("dev-bela"), Handle: "dev-bela", Owner: owner.String()},
			expected: types.CredentialID("dev-bela"),
		},
		"handle mismatch": {
			proof:    types.Proof{Credential: credential, Handle: "dev-bela", Owner: owner.String()},
			expected: credential,
		},
		"owner mismatch": {
			proof:    types.Proof{Credential: credential, Handle: "dev-ayna", Owner: sample.AccAddress()},
			expected: credential,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := k.VerifyProof(ctx, tc.proof, tc.expected)
			require.ErrorIs(t, err, types.ErrInvalidProof)
		})
	}
}

func TestRoleBadges(t *testing.T) {
	k, ctx := keepertest.BadgesKeeper(t)

	credential, err := k.Register(ctx, sample.AccAddressBytes(), "acme-payroll")
	require.NoError(t, err)

	role := types.RoleBadge{
		ContractID:     "contract-1",
		ContractKind:   "job",
		ContractRole:   "admin",
		ContractHandle: "backend-role",
		TeamHandle:     "acme",
	}
	require.NoError(t, k.MintAdminCredential(ctx, credential, role))

	// one role badge per credential and contract
	err = k.MintMemberCredential(ctx, credential, types.RoleBadge{ContractID: "contract-1", ContractRole: "member"})
	require.ErrorIs(t, err, types.ErrRoleBadgeExists)

	require.NoError(t, k.MintMemberCredential(ctx, credential, types.RoleBadge{
		ContractID:   "contract-2",
		ContractKind: "project",
		ContractRole: "member",
	}))

	stored, found := k.GetRoleBadge(ctx, credential, "contract-1")
	require.True(t, found)
	require.Equal(t, "admin", stored.ContractRole)
	require.Equal(t, credential, stored.Credential)

	badges := k.GetRoleBadgesByCredential(ctx, credential)
	require.Len(t, badges, 2)
}

func TestCredentialIDDeterministic(t *testing.T) {
	require.Equal(t, types.CredentialID("dev-ayna"), types.CredentialID("dev-ayna"))
	require.NotEqual(t, types.CredentialID("dev-ayna"), types.CredentialID("dev-bela"))
}
