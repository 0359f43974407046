package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/teampay/chain/internal/storecodec"
	"github.com/teampay/chain/x/custody/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		escrowBankKeeper  types.EscrowBankKeeper
		credentialKeeper  types.CredentialKeeper
		ledgerKeeper      types.LedgerKeeper
		marketplaceKeeper types.MarketplaceKeeper

		// Collections schema and stores
		Schema      collections.Schema
		ParamsStore collections.Item[types.Params]
		Jobs        collections.Map[string, types.Job]
		Projects    collections.Map[string, types.Project]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	escrowBankKeeper types.EscrowBankKeeper,
	credentialKeeper types.CredentialKeeper,
	ledgerKeeper types.LedgerKeeper,
	marketplaceKeeper types.MarketplaceKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,

		escrowBankKeeper:  escrowBankKeeper,
		credentialKeeper:  credentialKeeper,
		ledgerKeeper:      ledgerKeeper,
		marketplaceKeeper: marketplaceKeeper,
	}

	k.ParamsStore = collections.NewItem(sb, types.ParamsKey, "params", storecodec.JSONValue[types.Params]("Params"))
	k.Jobs = collections.NewMap(sb, types.JobKey, "jobs", collections.StringKey, storecodec.JSONValue[types.Job]("Job"))
	k.Projects = collections.NewMap(sb, types.ProjectKey, "projects", collections.StringKey, storecodec.JSONValue[types.Project]("Project"))

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetJob stores a job contract. The record must reconcile.
func (k Keeper) SetJob(ctx context.Context, job types.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	return k.Jobs.Set(ctx, job.ID, job)
}

// GetJob retrieves a job contract by id.
func (k Keeper) GetJob(ctx context.Context, contractID string) (types.Job, bool) {
	job, err := k.Jobs.Get(ctx, contractID)
	if err != nil {
		return types.Job{}, false
	}
	return job, true
}

// SetProject stores a project contract. The record must reconcile.
func (k Keeper) SetProject(ctx context.Context, project types.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	return k.Projects.Set(ctx, project.ID, project)
}

// GetProject retrieves a project contract by id.
func (k Keeper) GetProject(ctx context.Context, contractID string) (types.Project, bool) {
	project, err := k.Projects.Get(ctx, contractID)
	if err != nil {
		return types.Project{}, false
	}
	return project, true
}

// GetAllJobs returns every job contract (for genesis export).
func (k Keeper) GetAllJobs(ctx context.Context) []types.Job {
	iter, err := k.Jobs.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetAllProjects returns every project contract (for genesis export).
func (k Keeper) GetAllProjects(ctx context.Context) []types.Project {
	iter, err := k.Projects.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}
