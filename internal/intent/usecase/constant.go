package usecase

// Log prefixes
const (
	logPrefixResolve        = "internal.intent.usecase.Resolve"
	logPrefixResolveHybrid  = "internal.intent.usecase.ResolveHybrid"
	logPrefixExtractPayload = "internal.intent.usecase.ExtractPayload"
	logPrefixClearCache     = "internal.intent.usecase.ClearCache"
)

const (
	confirmBoost   = 0.1
	confirmCeiling = 0.95

	defaultSuggestLimit = 5
	maxSuggestLimit     = 20
)
