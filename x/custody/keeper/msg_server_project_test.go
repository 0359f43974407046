package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/teampay/chain/testutil/keeper"
	"github.com/teampay/chain/testutil/sample"
	badgestypes "github.com/teampay/chain/x/badges/types"
	"github.com/teampay/chain/x/custody/types"
	ledgertypes "github.com/teampay/chain/x/ledger/types"
)

type projectActors struct {
	admin      sdk.AccAddress
	memberA    sdk.AccAddress
	memberB    sdk.AccAddress
	adminProof badgestypes.Proof
	proofA     badgestypes.Proof
	proofB     badgestypes.Proof
	contractID string
}

func createProject(t *testing.T, f keepertest.CustodyFixture, deposit math.LegacyDec) projectActors {
	admin := sample.AccAddressBytes()
	adminProof := f.RegisterBadge(t, admin, "acme-projects")

	if deposit.IsPositive() {
		f.Bank.FundAccount(admin, sdk.NewCoins(types.CoinFromDec("upay", 3, deposit)))
	}

	resp, err := f.MsgServer.CreateProject(f.Ctx, &types.MsgCreateProject{
		Signer:         admin.String(),
		Proof:          adminProof,
		TeamHandle:     "acme",
		ContractHandle: "q3-roadmap",
		ContractName:   "Q3 Roadmap",
		Category:       "engineering",
		AssetDenom:     "upay",
		AssetDecimals:  3,
		StartEpoch:     keepertest.TestBlockTime - 1000,
		EndEpoch:       keepertest.TestBlockTime + 30*types.SecondsPerDay,
		IsJoinable:     true,
		Deposit:        deposit,
	})
	require.NoError(t, err)

	return projectActors{
		admin:      admin,
		adminProof: adminProof,
		contractID: resp.ContractID,
	}
}

func (p *projectActors) inviteAndJoin(t *testing.T, f keepertest.CustodyFixture) {
	p.memberA = sample.AccAddressBytes()
	p.memberB = sample.AccAddressBytes()
	p.proofA = f.RegisterBadge(t, p.memberA, "dev-ayna")
	p.proofB = f.RegisterBadge(t, p.memberB, "dev-bela")

	for _, m := range []struct {
		addr  sdk.AccAddress
		proof badgestypes.Proof
	}{
		{p.memberA, p.proofA},
		{p.memberB, p.proofB},
	} {
		_, err := f.MsgServer.InviteProjectMember(f.Ctx, &types.MsgInviteProjectMember{
			Signer:           p.admin.String(),
			Proof:            p.adminProof,
			ContractID:       p.contractID,
			MemberCredential: m.proof.Credential,
			MemberHandle:     m.proof.Handle,
		})
		require.NoError(t, err)
		_, err = f.MsgServer.JoinProject(f.Ctx, &types.MsgJoinProject{
			Signer:     m.addr.String(),
			Proof:      m.proof,
			ContractID: p.contractID,
		})
		require.NoError(t, err)
	}
}

// Three objectives splitting the 1200 escrow across both members. Objective
// sums differ from one another on purpose; only the grand total is bound to
// the escrow balance.
func (p projectActors) objectives() map[uint64]types.Allocations {
	return map[uint64]types.Allocations{
		1: {p.proofA.Credential: math.LegacyNewDec(100), p.proofB.Credential: math.LegacyNewDec(200)},
		2: {p.proofA.Credential: math.LegacyNewDec(200), p.proofB.Credential: math.LegacyNewDec(400)},
		3: {p.proofA.Credential: math.LegacyNewDec(100), p.proofB.Credential: math.LegacyNewDec(200)},
	}
}

func createGoldenProject(t *testing.T, f keepertest.CustodyFixture) projectActors {
	p := createProject(t, f, math.LegacyNewDec(1200))
	p.inviteAndJoin(t, f)
	_, err := f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: p.objectives(),
	})
	require.NoError(t, err)
	return p
}

func TestCreateProject(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyNewDec(1200))

	project, found := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.True(t, found)
	require.Equal(t, p.adminProof.Credential, project.AdminCredential)
	require.True(t, project.Funds.Equal(math.LegacyNewDec(1200)))
	require.True(t, project.IsJoinable)

	require.Equal(t, math.NewInt(1_200_000), f.Bank.ModuleBalance(types.ModuleName).AmountOf("upay"))

	badge, found := f.Badges.GetRoleBadge(f.Ctx, p.adminProof.Credential, p.contractID)
	require.True(t, found)
	require.Equal(t, string(types.RoleAdmin), badge.ContractRole)
}

func TestUpdateObjectivesExactSum(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyNewDec(1200))
	p.inviteAndJoin(t, f)

	// a partial allocation leaves escrow unassigned and is rejected
	partial := map[uint64]types.Allocations{
		1: {p.proofA.Credential: math.LegacyNewDec(100), p.proofB.Credential: math.LegacyNewDec(200)},
	}
	_, err := f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: partial,
	})
	require.ErrorIs(t, err, types.ErrLedgerInvariant)

	_, err = f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: p.objectives(),
	})
	require.NoError(t, err)

	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.Len(t, project.Objectives, 3)
	require.True(t, project.PendingTotal().Equal(project.Funds))
}

func TestUpdateObjectivesRejectsNonMember(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyNewDec(1200))
	p.inviteAndJoin(t, f)

	stranger := f.RegisterBadge(t, sample.AccAddressBytes(), "dev-rival")
	_, err := f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: map[uint64]types.Allocations{
			1: {stranger.Credential: math.LegacyNewDec(1200)},
		},
	})
	require.ErrorIs(t, err, types.ErrMemberNotFound)
}

func TestUpdateObjectivesCap(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyNewDec(1200))
	p.inviteAndJoin(t, f)

	require.NoError(t, f.Keeper.SetParams(f.Ctx, types.NewParams(types.DefaultMaxMembers, 2, types.DefaultListingLockDays)))

	_, err := f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: p.objectives(),
	})
	require.ErrorIs(t, err, types.ErrInvalidObjectives)
}

func TestRewardObjective(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createGoldenProject(t, f)

	resp, err := f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.NoError(t, err)
	require.True(t, resp.Rewarded.Equal(math.LegacyNewDec(300)))

	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.True(t, project.Funds.Equal(math.LegacyNewDec(900)))
	require.True(t, project.ReservedFor(p.proofA.Credential).Equal(math.LegacyNewDec(100)))
	require.True(t, project.ReservedFor(p.proofB.Credential).Equal(math.LegacyNewDec(200)))
	require.True(t, project.Rewarded.Equal(math.LegacyNewDec(300)))

	// the objective moved from pending to completed
	_, pending := project.Objectives[1]
	require.False(t, pending)
	require.Len(t, project.Completed[1], 2)

	// settling the same objective twice is impossible
	_, err = f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.ErrorIs(t, err, types.ErrObjectiveNotFound)
}

func TestRewardObjectiveRequiresSignatures(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyNewDec(1200))
	p.inviteAndJoin(t, f)

	// a third member is invited but never signs
	memberC := sample.AccAddressBytes()
	proofC := f.RegisterBadge(t, memberC, "dev-cleo")
	_, err := f.MsgServer.InviteProjectMember(f.Ctx, &types.MsgInviteProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: proofC.Credential,
		MemberHandle:     proofC.Handle,
	})
	require.NoError(t, err)

	_, err = f.MsgServer.UpdateObjectives(f.Ctx, &types.MsgUpdateObjectives{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		Objectives: map[uint64]types.Allocations{
			1: {proofC.Credential: math.LegacyNewDec(1200)},
		},
	})
	require.NoError(t, err)

	_, err = f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.ErrorIs(t, err, types.ErrPrecondition)

	// nothing moved
	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.True(t, project.Funds.Equal(math.LegacyNewDec(1200)))
	require.True(t, project.ReservedFor(proofC.Credential).IsZero())
}

func TestProjectWithdraw(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createGoldenProject(t, f)

	_, err := f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.NoError(t, err)

	resp, err := f.MsgServer.WithdrawProject(f.Ctx, &types.MsgWithdrawProject{
		Signer:     p.memberA.String(),
		Proof:      p.proofA,
		ContractID: p.contractID,
	})
	require.NoError(t, err)
	require.True(t, resp.Amount.Equal(math.LegacyNewDec(100)))
	require.Equal(t, math.NewInt(100_000), f.Bank.AccountBalance(p.memberA).AmountOf("upay"))

	// the other member's balance is untouched
	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.True(t, project.ReservedFor(p.proofA.Credential).IsZero())
	require.True(t, project.ReservedFor(p.proofB.Credential).Equal(math.LegacyNewDec(200)))
	require.True(t, project.Withdrawn.Equal(math.LegacyNewDec(100)))

	_, err = f.MsgServer.WithdrawProject(f.Ctx, &types.MsgWithdrawProject{
		Signer:     p.memberA.String(),
		Proof:      p.proofA,
		ContractID: p.contractID,
	})
	require.ErrorIs(t, err, types.ErrNothingToWithdraw)
}

func TestRemoveProjectMember(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createGoldenProject(t, f)

	_, err := f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.NoError(t, err)

	// a member holding a reserved balance cannot be detached
	_, err = f.MsgServer.RemoveProjectMember(f.Ctx, &types.MsgRemoveProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: p.proofA.Credential,
	})
	require.ErrorIs(t, err, types.ErrPrecondition)

	_, err = f.MsgServer.WithdrawProject(f.Ctx, &types.MsgWithdrawProject{
		Signer:     p.memberA.String(),
		Proof:      p.proofA,
		ContractID: p.contractID,
	})
	require.NoError(t, err)

	_, err = f.MsgServer.RemoveProjectMember(f.Ctx, &types.MsgRemoveProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: p.proofA.Credential,
	})
	require.NoError(t, err)

	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	_, isMember := project.Members[p.proofA.Credential]
	require.False(t, isMember)
	require.Equal(t, "dev-ayna", project.Removed[p.proofA.Credential])

	// detached from every pending objective, the other member keeps theirs
	for id, members := range project.Objectives {
		_, ok := members[p.proofA.Credential]
		require.False(t, ok, "objective %d still lists the removed member", id)
	}
	require.True(t, project.Objectives[2][p.proofB.Credential].Equal(math.LegacyNewDec(400)))
	require.True(t, project.Objectives[3][p.proofB.Credential].Equal(math.LegacyNewDec(200)))
}

func TestLeaveProject(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createGoldenProject(t, f)

	_, err := f.MsgServer.LeaveProject(f.Ctx, &types.MsgLeaveProject{
		Signer:     p.memberA.String(),
		Proof:      p.proofA,
		ContractID: p.contractID,
	})
	require.NoError(t, err)

	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	_, isMember := project.Members[p.proofA.Credential]
	require.False(t, isMember)
	require.Equal(t, "dev-ayna", project.Removed[p.proofA.Credential])
	require.False(t, project.HasSignature(p.proofA.Credential))

	records := f.Ledger.GetRecordsByContract(f.Ctx, p.contractID)
	require.Equal(t, ledgertypes.TxKindLeave, records[len(records)-1].Kind)
}

func TestCancelProject(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createGoldenProject(t, f)

	_, err := f.MsgServer.RewardObjective(f.Ctx, &types.MsgRewardObjective{
		Signer:      p.admin.String(),
		Proof:       p.adminProof,
		ContractID:  p.contractID,
		ObjectiveID: 1,
	})
	require.NoError(t, err)

	resp, err := f.MsgServer.CancelProject(f.Ctx, &types.MsgCancelProject{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
	})
	require.NoError(t, err)
	require.True(t, resp.Swept.Equal(math.LegacyNewDec(900)))

	// pending objectives are forfeit, reserved balances survive
	project, _ := f.Keeper.GetProject(f.Ctx, p.contractID)
	require.True(t, project.IsCancelled)
	require.False(t, project.IsJoinable)
	require.Empty(t, project.Objectives)
	require.True(t, project.Funds.IsZero())
	require.True(t, project.ReservedFor(p.proofB.Credential).Equal(math.LegacyNewDec(200)))
	require.Equal(t, math.NewInt(900_000), f.Bank.AccountBalance(p.admin).AmountOf("upay"))

	// completed rewards stay claimable after cancellation
	wresp, err := f.MsgServer.WithdrawProject(f.Ctx, &types.MsgWithdrawProject{
		Signer:     p.memberB.String(),
		Proof:      p.proofB,
		ContractID: p.contractID,
	})
	require.NoError(t, err)
	require.True(t, wresp.Amount.Equal(math.LegacyNewDec(200)))

	// cancelling again is a no-op
	resp, err = f.MsgServer.CancelProject(f.Ctx, &types.MsgCancelProject{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
	})
	require.NoError(t, err)
	require.True(t, resp.Swept.IsZero())
}

func TestJoinProjectWindow(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyZeroDec())

	member := sample.AccAddressBytes()
	proof := f.RegisterBadge(t, member, "dev-ayna")
	_, err := f.MsgServer.InviteProjectMember(f.Ctx, &types.MsgInviteProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: proof.Credential,
		MemberHandle:     proof.Handle,
	})
	require.NoError(t, err)

	// joining is rejected once the admin turns joinability off
	_, err = f.MsgServer.UpdateProjectDetails(f.Ctx, &types.MsgUpdateProjectDetails{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		IsJoinable: false,
	})
	require.NoError(t, err)

	_, err = f.MsgServer.JoinProject(f.Ctx, &types.MsgJoinProject{
		Signer:     member.String(),
		Proof:      proof,
		ContractID: p.contractID,
	})
	require.ErrorIs(t, err, types.ErrJoinWindowClosed)

	// or once the project has ended
	_, err = f.MsgServer.UpdateProjectDetails(f.Ctx, &types.MsgUpdateProjectDetails{
		Signer:     p.admin.String(),
		Proof:      p.adminProof,
		ContractID: p.contractID,
		StartEpoch: keepertest.TestBlockTime - 2000,
		EndEpoch:   keepertest.TestBlockTime - 1000,
		IsJoinable: true,
	})
	require.NoError(t, err)

	_, err = f.MsgServer.JoinProject(f.Ctx, &types.MsgJoinProject{
		Signer:     member.String(),
		Proof:      proof,
		ContractID: p.contractID,
	})
	require.ErrorIs(t, err, types.ErrJoinWindowClosed)
}

func TestProjectRosterCap(t *testing.T) {
	f := keepertest.CustodyKeeper(t)
	p := createProject(t, f, math.LegacyZeroDec())
	p.inviteAndJoin(t, f)

	require.NoError(t, f.Keeper.SetParams(f.Ctx, types.NewParams(2, types.DefaultMaxObjectives, types.DefaultListingLockDays)))

	proofC := f.RegisterBadge(t, sample.AccAddressBytes(), "dev-cleo")
	_, err := f.MsgServer.InviteProjectMember(f.Ctx, &types.MsgInviteProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: proofC.Credential,
		MemberHandle:     proofC.Handle,
	})
	require.ErrorIs(t, err, types.ErrPrecondition)

	// re-inviting an existing member is always rejected
	_, err = f.MsgServer.InviteProjectMember(f.Ctx, &types.MsgInviteProjectMember{
		Signer:           p.admin.String(),
		Proof:            p.adminProof,
		ContractID:       p.contractID,
		MemberCredential: p.proofA.Credential,
		MemberHandle:     p.proofA.Handle,
	})
	require.ErrorIs(t, err, types.ErrAlreadyInvited)
}
