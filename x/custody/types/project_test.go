package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/teampay/chain/x/custody/types"
)

func validProject() types.Project {
	return types.Project{
		ID:              types.ContractID(types.KindProject, "acme", "q3-roadmap"),
		TeamHandle:      "acme",
		ContractHandle:  "q3-roadmap",
		AdminCredential: "cred-admin",
		AdminHandle:     "acme-projects",
		AssetDenom:      "upay",
		AssetDecimals:   3,
		Funds:           math.LegacyNewDec(600),
		StartEpoch:      fixtureStart,
		EndEpoch:        fixtureEnd,
		Amount:          math.LegacyNewDec(600),
		Rewarded:        math.LegacyZeroDec(),
		Withdrawn:       math.LegacyZeroDec(),
	}
}

func TestProjectValidate(t *testing.T) {
	require.NoError(t, validProject().Validate())

	unbalanced := validProject()
	unbalanced.Funds = math.LegacyNewDec(599)
	require.ErrorIs(t, unbalanced.Validate(), types.ErrLedgerInvariant)

	inverted := validProject()
	inverted.EndEpoch = inverted.StartEpoch - 1
	require.ErrorIs(t, inverted.Validate(), types.ErrPrecondition)
}

func TestProjectValidateNegativeReservedEntry(t *testing.T) {
	// offsetting entries keep the conservation identity and the total
	// non-negative, so each entry is checked on its own
	project := validProject()
	project.Reserved = map[string]math.LegacyDec{
		"cred-a": math.LegacyNewDec(-100),
		"cred-b": math.LegacyNewDec(100),
	}
	require.True(t, project.ReservedTotal().IsZero())
	require.ErrorIs(t, project.Validate(), types.ErrLedgerInvariant)
}

func TestProjectReservedFor(t *testing.T) {
	project := validProject()
	project.Funds = math.LegacyNewDec(400)
	project.Reserved = map[string]math.LegacyDec{"cred-a": math.LegacyNewDec(200)}
	require.NoError(t, project.Validate())

	require.True(t, project.ReservedFor("cred-a").Equal(math.LegacyNewDec(200)))
	require.True(t, project.ReservedFor("cred-b").IsZero())
}
