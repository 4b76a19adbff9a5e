package recordscmd

// FeatureGates exposes runtime feature toggles required by record command handlers.
// Callers should supply closures that read from blog.Config.Features so handlers
// stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	RecordsEnabled func() bool
}

func (g FeatureGates) recordsEnabled() bool {
	if g.RecordsEnabled == nil {
		return true
	}
	return g.RecordsEnabled()
}
