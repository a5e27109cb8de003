package nakama

const (
	// RpcPlayLevel runs a full bot playthrough of one level and returns its summary.
	RpcPlayLevel = "crew_play_level"
	// RpcListLevels returns the level catalogue.
	RpcListLevels = "crew_list_levels"
	// RpcVoiceToken signs a voice chat token for the calling user.
	RpcVoiceToken = "crew_voice_token"
)

// Runtime environment keys, set under runtime.env in the Nakama config.
const (
	EnvVoiceSecret = "crew_voice_secret"
	EnvVoiceIssuer = "crew_voice_issuer"
	EnvVoiceDomain = "crew_voice_domain"
	EnvBotLevel    = "crew_bot_level"
)

const (
	gameConfigPath    = "data/game_config.json"
	botIdentitiesPath = "data/bot_identities.json"

	defaultCrewSize = 4
)

// gRPC status codes used by runtime.NewError.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeFailedPrecondition = 9
	codeInternal           = 13
)
