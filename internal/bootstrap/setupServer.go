package bootstrap

import (
	"time"

	"assassin-server/config"
	httpHandler "assassin-server/internal/api/http/handler"
	httpUsecase "assassin-server/internal/api/http/usecase"
	wsHandler "assassin-server/internal/api/ws/handler"
	"assassin-server/internal/handler"
	"assassin-server/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	updateSettingsHandler := httpHandlers["update-settings"].(*httpHandler.UpdateSettingsHandler)
	startGameHandler := httpHandlers["start-game"].(*httpHandler.StartGameHandler)
	confirmAssignmentHandler := httpHandlers["confirm-assignment"].(*httpHandler.ConfirmAssignmentHandler)
	rejectObjectHandler := httpHandlers["reject-object"].(*httpHandler.RejectAssignmentHandler)
	rejectPlaceHandler := httpHandlers["reject-place"].(*httpHandler.RejectAssignmentHandler)
	submitClaimHandler := httpHandlers["submit-claim"].(*httpHandler.SubmitClaimHandler)
	respondClaimHandler := httpHandlers["respond-claim"].(*httpHandler.RespondClaimHandler)
	witnessVoteHandler := httpHandlers["witness-vote"].(*httpHandler.WitnessVoteHandler)
	getClaimsHandler := httpHandlers["get-claims"].(*httpHandler.GetClaimsHandler)
	getClaimHandler := httpHandlers["get-claim"].(*httpHandler.GetClaimHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)
	checkExpiryHandler := httpHandlers["check-expiry"].(*httpHandler.CheckExpiryHandler)
	sendMessageHandler := httpHandlers["send-message"].(*httpHandler.SendMessageHandler)
	getMessagesHandler := httpHandlers["get-messages"].(*httpHandler.GetMessagesHandler)
	leaderboardHandler := httpHandlers["leaderboard"].(*httpHandler.GetLeaderboardHandler)

	app.Post("/rooms", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	app.Get("/rooms/:room_code", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpUsecase.RoomView](getRoomHandler))
	app.Post("/rooms/:room_code/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	app.Patch("/rooms/:room_code/settings", handler.HandleWithFiber[httpHandler.UpdateSettingsRequest, httpHandler.UpdateSettingsResponse](updateSettingsHandler))
	app.Post("/rooms/:room_code/start", handler.HandleWithFiber[httpHandler.StartGameRequest, httpHandler.StartGameResponse](startGameHandler))
	app.Post("/rooms/:room_code/confirm", handler.HandleWithFiber[httpHandler.ConfirmAssignmentRequest, httpHandler.ConfirmAssignmentResponse](confirmAssignmentHandler))
	app.Post("/rooms/:room_code/reject-object", handler.HandleWithFiber[httpHandler.RejectAssignmentRequest, httpHandler.RejectAssignmentResponse](rejectObjectHandler))
	app.Post("/rooms/:room_code/reject-place", handler.HandleWithFiber[httpHandler.RejectAssignmentRequest, httpHandler.RejectAssignmentResponse](rejectPlaceHandler))
	app.Post("/rooms/:room_code/claims", handler.HandleWithFiber[httpHandler.SubmitClaimRequest, httpHandler.SubmitClaimResponse](submitClaimHandler))
	app.Get("/rooms/:room_code/claims", handler.HandleWithFiber[httpHandler.GetClaimsRequest, httpHandler.GetClaimsResponse](getClaimsHandler))
	app.Get("/claims/:claim_id", handler.HandleWithFiber[httpHandler.GetClaimRequest, httpHandler.GetClaimResponse](getClaimHandler))
	app.Post("/claims/:claim_id/respond", handler.HandleWithFiber[httpHandler.RespondClaimRequest, httpHandler.RespondClaimResponse](respondClaimHandler))
	app.Post("/claims/:claim_id/witness", handler.HandleWithFiber[httpHandler.WitnessVoteRequest, httpHandler.WitnessVoteResponse](witnessVoteHandler))
	app.Post("/rooms/:room_code/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))
	app.Post("/rooms/:room_code/check-expiry", handler.HandleWithFiber[httpHandler.CheckExpiryRequest, httpHandler.CheckExpiryResponse](checkExpiryHandler))
	app.Post("/rooms/:room_code/messages", handler.HandleWithFiber[httpHandler.SendMessageRequest, httpHandler.SendMessageResponse](sendMessageHandler))
	app.Get("/rooms/:room_code/messages", handler.HandleWithFiber[httpHandler.GetMessagesRequest, httpHandler.GetMessagesResponse](getMessagesHandler))
	app.Get("/leaderboard", handler.HandleWithFiber[httpHandler.GetLeaderboardRequest, httpHandler.GetLeaderboardResponse](leaderboardHandler))

	wsRoute := app.Group("/ws")
	roomConnectHandler := wsHandlers["room-connect"].(*wsHandler.RoomConnectHandler)
	wsRoute.Get("/rooms/:room_code", handler.HandleWithFiberWS[wsHandler.RoomConnectRequest](roomConnectHandler))

	return app
}
