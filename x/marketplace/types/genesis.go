package types

// GenesisState defines the marketplace module's genesis state.
type GenesisState struct {
	Params     Params     `json:"params"`
	Categories []Category `json:"categories"`
	Listings   []Listing  `json:"listings"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Categories: []Category{},
		Listings:   []Listing{},
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Categories))
	for _, cat := range gs.Categories {
		if err := cat.Validate(); err != nil {
			return err
		}
		key := cat.Kind + "/" + cat.Name
		if _, ok := seen[key]; ok {
			return ErrCategoryExists.Wrapf("duplicate category %s", key)
		}
		seen[key] = struct{}{}
	}
	listed := make(map[string]struct{}, len(gs.Listings))
	for _, l := range gs.Listings {
		if _, ok := listed[l.ContractID]; ok {
			return ErrAlreadyListed.Wrapf("duplicate listing %s", l.ContractID)
		}
		if _, ok := seen[l.Kind+"/"+l.Category]; !ok {
			return ErrCategoryNotFound.Wrapf("listing %s references unknown category", l.ContractID)
		}
		listed[l.ContractID] = struct{}{}
	}
	return nil
}
