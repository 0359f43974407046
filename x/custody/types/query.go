package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the read-side API of the custody module.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Job(ctx context.Context, req *QueryJobRequest) (*QueryJobResponse, error)
	Project(ctx context.Context, req *QueryProjectRequest) (*QueryProjectResponse, error)
	Role(ctx context.Context, req *QueryRoleRequest) (*QueryRoleResponse, error)
	ContractSummary(ctx context.Context, req *QueryContractSummaryRequest) (*QueryContractSummaryResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryJobRequest struct {
	ContractID string `json:"contract_id"`
}

type QueryJobResponse struct {
	Job Job `json:"job"`
}

type QueryProjectRequest struct {
	ContractID string `json:"contract_id"`
}

type QueryProjectResponse struct {
	Project Project `json:"project"`
}

type QueryRoleRequest struct {
	ContractID string `json:"contract_id"`
	Credential string `json:"credential"`
}

type QueryRoleResponse struct {
	Role ContractRole `json:"role"`
}

type QueryContractSummaryRequest struct {
	ContractID string `json:"contract_id"`
}

type QueryContractSummaryResponse struct {
	Summary ContractSummary `json:"summary"`
}

// ContractSummary is the marketplace-facing view of a contract.
type ContractSummary struct {
	ContractID      string         `json:"contract_id"`
	Kind            ContractKind   `json:"kind"`
	TeamHandle      string         `json:"team_handle"`
	ContractHandle  string         `json:"contract_handle"`
	ContractName    string         `json:"contract_name"`
	Category        string         `json:"category"`
	Marketplaces    []string       `json:"marketplaces,omitempty"`
	AdminCredential string         `json:"admin_credential"`
	AssetDenom      string         `json:"asset_denom"`
	Remaining       math.LegacyDec `json:"remaining"`
	IsJoinable      bool           `json:"is_joinable"`
	IsCancelled     bool           `json:"is_cancelled"`
}
