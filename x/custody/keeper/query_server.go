package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/teampay/chain/x/custody/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Job(c context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	job, found := k.GetJob(ctx, req.ContractID)
	if !found {
		return nil, status.Errorf(codes.NotFound, "job contract %s not found", req.ContractID)
	}
	return &types.QueryJobResponse{Job: job}, nil
}

func (k Keeper) Project(c context.Context, req *types.QueryProjectRequest) (*types.QueryProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	project, found := k.GetProject(ctx, req.ContractID)
	if !found {
		return nil, status.Errorf(codes.NotFound, "project contract %s not found", req.ContractID)
	}
	return &types.QueryProjectResponse{Project: project}, nil
}

// Role classifies a credential against either contract variant.
func (k Keeper) Role(c context.Context, req *types.QueryRoleRequest) (*types.QueryRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	if job, found := k.GetJob(ctx, req.ContractID); found {
		return &types.QueryRoleResponse{Role: job.Role(req.Credential)}, nil
	}
	if project, found := k.GetProject(ctx, req.ContractID); found {
		return &types.QueryRoleResponse{Role: project.Role(req.Credential)}, nil
	}
	return nil, status.Errorf(codes.NotFound, "contract %s not found", req.ContractID)
}

// ContractSummary is the marketplace-facing view of either contract variant.
func (k Keeper) ContractSummary(c context.Context, req *types.QueryContractSummaryRequest) (*types.QueryContractSummaryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	if job, found := k.GetJob(ctx, req.ContractID); found {
		return &types.QueryContractSummaryResponse{Summary: types.ContractSummary{
			ContractID:      job.ID,
			Kind:            types.KindJob,
			TeamHandle:      job.TeamHandle,
			ContractHandle:  job.ContractHandle,
			ContractName:    job.ContractName,
			Category:        job.Category,
			Marketplaces:    job.Marketplaces,
			AdminCredential: job.AdminCredential,
			AssetDenom:      job.AssetDenom,
			Remaining:       job.Funds.Add(job.Reserved),
			IsJoinable:      !job.IsCancelled && len(job.Signatures) == 0,
			IsCancelled:     job.IsCancelled,
		}}, nil
	}
	if project, found := k.GetProject(ctx, req.ContractID); found {
		return &types.QueryContractSummaryResponse{Summary: types.ContractSummary{
			ContractID:      project.ID,
			Kind:            types.KindProject,
			TeamHandle:      project.TeamHandle,
			ContractHandle:  project.ContractHandle,
			ContractName:    project.ContractName,
			Category:        project.Category,
			Marketplaces:    project.Marketplaces,
			AdminCredential: project.AdminCredential,
			AssetDenom:      project.AssetDenom,
			Remaining:       project.Funds.Add(project.ReservedTotal()),
			IsJoinable:      project.IsJoinable && !project.IsCancelled,
			IsCancelled:     project.IsCancelled,
		}}, nil
	}
	return nil, status.Errorf(codes.NotFound, "contract %s not found", req.ContractID)
}
