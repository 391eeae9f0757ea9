package bootstrap

import (
	"math/rand"
	"time"

	"assassin-server/config"
	httpHandler "assassin-server/internal/api/http/handler"
	httpUsecase "assassin-server/internal/api/http/usecase"
	wsHandler "assassin-server/internal/api/ws/handler"
	wsUsecase "assassin-server/internal/api/ws/usecase"
)

func SetupHTTPHandlers(postgresRepository PostgresRepository, roomRedisManager RoomRedisManager, gameConfig config.GameConfig) map[string]interface{} {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(postgresRepository, roomRedisManager, gameConfig.MinPlayers, gameConfig.MaxPlayers)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	getRoomUseCase := httpUsecase.NewGetRoomUseCase(postgresRepository)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(postgresRepository, roomRedisManager)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	updateSettingsUseCase := httpUsecase.NewUpdateSettingsUseCase(postgresRepository, roomRedisManager)
	updateSettingsHandler := httpHandler.NewUpdateSettingsHandler(updateSettingsUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(postgresRepository, roomRedisManager, rng)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	confirmAssignmentUseCase := httpUsecase.NewConfirmAssignmentUseCase(postgresRepository, roomRedisManager)
	confirmAssignmentHandler := httpHandler.NewConfirmAssignmentHandler(confirmAssignmentUseCase)

	rejectAssignmentUseCase := httpUsecase.NewRejectAssignmentUseCase(postgresRepository, roomRedisManager, rng)
	rejectObjectHandler := httpHandler.NewRejectObjectHandler(rejectAssignmentUseCase)
	rejectPlaceHandler := httpHandler.NewRejectPlaceHandler(rejectAssignmentUseCase)

	submitClaimUseCase := httpUsecase.NewSubmitClaimUseCase(postgresRepository, roomRedisManager)
	submitClaimHandler := httpHandler.NewSubmitClaimHandler(submitClaimUseCase)

	respondClaimUseCase := httpUsecase.NewRespondClaimUseCase(postgresRepository, roomRedisManager)
	respondClaimHandler := httpHandler.NewRespondClaimHandler(respondClaimUseCase)

	witnessVoteUseCase := httpUsecase.NewWitnessVoteUseCase(postgresRepository, roomRedisManager)
	witnessVoteHandler := httpHandler.NewWitnessVoteHandler(witnessVoteUseCase)

	getClaimsUseCase := httpUsecase.NewGetClaimsUseCase(postgresRepository)
	getClaimsHandler := httpHandler.NewGetClaimsHandler(getClaimsUseCase)

	getClaimUseCase := httpUsecase.NewGetClaimUseCase(postgresRepository)
	getClaimHandler := httpHandler.NewGetClaimHandler(getClaimUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(postgresRepository, roomRedisManager)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	checkExpiryUseCase := httpUsecase.NewCheckExpiryUseCase(postgresRepository, roomRedisManager)
	checkExpiryHandler := httpHandler.NewCheckExpiryHandler(checkExpiryUseCase)

	sendMessageUseCase := httpUsecase.NewSendMessageUseCase(postgresRepository, roomRedisManager)
	sendMessageHandler := httpHandler.NewSendMessageHandler(sendMessageUseCase)

	getMessagesUseCase := httpUsecase.NewGetMessagesUseCase(postgresRepository)
	getMessagesHandler := httpHandler.NewGetMessagesHandler(getMessagesUseCase)

	getLeaderboardUseCase := httpUsecase.NewGetLeaderboardUseCase(postgresRepository)
	getLeaderboardHandler := httpHandler.NewGetLeaderboardHandler(getLeaderboardUseCase)

	return map[string]interface{}{
		"create-room":        createRoomHandler,
		"get-room":           getRoomHandler,
		"join-room":          joinRoomHandler,
		"update-settings":    updateSettingsHandler,
		"start-game":         startGameHandler,
		"confirm-assignment": confirmAssignmentHandler,
		"reject-object":      rejectObjectHandler,
		"reject-place":       rejectPlaceHandler,
		"submit-claim":       submitClaimHandler,
		"respond-claim":      respondClaimHandler,
		"witness-vote":       witnessVoteHandler,
		"get-claims":         getClaimsHandler,
		"get-claim":          getClaimHandler,
		"leave-room":         leaveRoomHandler,
		"check-expiry":       checkExpiryHandler,
		"send-message":       sendMessageHandler,
		"get-messages":       getMessagesHandler,
		"leaderboard":        getLeaderboardHandler,
	}
}

func SetupWSHandlers(postgresRepository PostgresRepository, wsHub Hub) map[string]interface{} {
	roomConnectUseCase := wsUsecase.NewRoomConnectUseCase(wsHub, postgresRepository)
	roomConnectHandler := wsHandler.NewRoomConnectHandler(roomConnectUseCase)

	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
