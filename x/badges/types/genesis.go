package types

// GenesisState defines the badges module's genesis state.
type GenesisState struct {
	Badges     []Badge     `json:"badges"`
	RoleBadges []RoleBadge `json:"role_badges"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Badges:     []Badge{},
		RoleBadges: []RoleBadge{},
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Badges))
	for _, badge := range gs.Badges {
		if err := badge.Validate(); err != nil {
			return err
		}
		if _, ok := seen[badge.Credential]; ok {
			return ErrBadgeExists.Wrapf("duplicate credential %s", badge.Credential)
		}
		seen[badge.Credential] = struct{}{}
	}
	for _, role := range gs.RoleBadges {
		if _, ok := seen[role.Credential]; !ok {
			return ErrBadgeNotFound.Wrapf("role badge for unknown credential %s", role.Credential)
		}
	}
	return nil
}
