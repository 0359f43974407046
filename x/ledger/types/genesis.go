package types

// GenesisState defines the ledger module's genesis state.
type GenesisState struct {
	Records []TxRecord `json:"records"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Records: []TxRecord{},
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]struct{}, len(gs.Records))
	for _, record := range gs.Records {
		if err := record.Validate(); err != nil {
			return err
		}
		if _, ok := seen[record.Sequence]; ok {
			return ErrInvalidRecord.Wrapf("duplicate sequence %d", record.Sequence)
		}
		seen[record.Sequence] = struct{}{}
	}
	return nil
}
