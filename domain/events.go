package domain

// Broadcast event types published on the room channel. Clients treat
// every event as a cache invalidation and re-fetch room state.
const (
	EventRoomCreated     = "room_created"
	EventPlayerJoined    = "player_joined"
	EventPlayerLeft      = "player_left"
	EventSettingsUpdated = "settings_updated"
	EventGameStarted     = "game_started"
	EventPlayerReady     = "player_ready"
	EventGameActive      = "game_active"
	EventObjectRejected  = "object_rejected"
	EventPlaceRejected   = "place_rejected"
	EventClaimSubmitted  = "claim_submitted"
	EventClaimConfirmed  = "claim_confirmed"
	EventClaimDisputed   = "claim_disputed"
	EventClaimVerified   = "claim_verified"
	EventClaimRejected   = "claim_rejected"
	EventWitnessVote     = "witness_vote"
	EventGameEnded       = "game_ended"
	EventChatMessage     = "chat_message"
)
