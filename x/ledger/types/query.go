package types

import "context"

type QueryRecordsRequest struct{}

type QueryRecordsResponse struct {
	Records []TxRecord `json:"records"`
}

type QueryContractRecordsRequest struct {
	ContractID string `json:"contract_id"`
}

type QueryContractRecordsResponse struct {
	Records []TxRecord `json:"records"`
}

// QueryServer reads the append-only ledger.
type QueryServer interface {
	// Records returns every record in append order.
	Records(context.Context, *QueryRecordsRequest) (*QueryRecordsResponse, error)
	// ContractRecords returns the records emitted by a single contract.
	ContractRecords(context.Context, *QueryContractRecordsRequest) (*QueryContractRecordsResponse, error)
}
