package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/teampay/chain/x/ledger/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Records(c context.Context, req *types.QueryRecordsRequest) (*types.QueryRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryRecordsResponse{Records: k.GetAllRecords(c)}, nil
}

func (k Keeper) ContractRecords(c context.Context, req *types.QueryContractRecordsRequest) (*types.QueryContractRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.ContractID == "" {
		return nil, status.Error(codes.InvalidArgument, "missing contract id")
	}
	return &types.QueryContractRecordsResponse{Records: k.GetRecordsByContract(c, req.ContractID)}, nil
}
