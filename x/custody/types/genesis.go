package types

// GenesisState defines the custody module's genesis state.
type GenesisState struct {
	Params   Params    `json:"params"`
	Jobs     []Job     `json:"jobs"`
	Projects []Project `json:"projects"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Jobs:     []Job{},
		Projects: []Project{},
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Jobs)+len(gs.Projects))
	for _, job := range gs.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if _, ok := seen[job.ID]; ok {
			return ErrContractExists.Wrapf("duplicate contract id %s", job.ID)
		}
		seen[job.ID] = struct{}{}
	}
	for _, project := range gs.Projects {
		if err := project.Validate(); err != nil {
			return err
		}
		if _, ok := seen[project.ID]; ok {
			return ErrContractExists.Wrapf("duplicate contract id %s", project.ID)
		}
		seen[project.ID] = struct{}{}
	}
	return nil
}
