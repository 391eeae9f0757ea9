package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const roomColumns = `code, name, state, created_by, min_players, max_players, duration_ms,
	allow_object_rejection, allow_place_rejection, game_duration_days,
	suggested_objects, suggested_places, created_at, start_time, end_time`

const playerColumns = `id, room_code, name, is_alive, is_spectator, target_id, target_name,
	assigned_object, assigned_place, suggested_object, suggested_place,
	object_rejected, place_rejected, points, confirmed_ready, joined_at, eliminated_at`

const claimColumns = `id, room_code, claimer_id, target_id, status, target_response,
	witnesses, witness_responses, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var (
		room       domain.Room
		durationMs int64
		startTime  sql.NullTime
		endTime    sql.NullTime
	)
	err := row.Scan(
		&room.Code, &room.Name, &room.State, &room.CreatedBy,
		&room.MinPlayers, &room.MaxPlayers, &durationMs,
		&room.Settings.AllowObjectRejection, &room.Settings.AllowPlaceRejection,
		&room.Settings.GameDurationDays,
		pq.Array(&room.SuggestedObjects), pq.Array(&room.SuggestedPlaces),
		&room.CreatedAt, &startTime, &endTime,
	)
	if err != nil {
		return domain.Room{}, err
	}
	room.Duration = time.Duration(durationMs) * time.Millisecond
	if startTime.Valid {
		t := startTime.Time
		room.StartTime = &t
	}
	if endTime.Valid {
		t := endTime.Time
		room.EndTime = &t
	}
	return room, nil
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var (
		player       domain.Player
		targetID     sql.NullString
		targetName   sql.NullString
		object       sql.NullString
		place        sql.NullString
		sObject      sql.NullString
		sPlace       sql.NullString
		eliminatedAt sql.NullTime
	)
	err := row.Scan(
		&player.ID, &player.RoomCode, &player.Name, &player.IsAlive, &player.IsSpectator,
		&targetID, &targetName, &object, &place, &sObject, &sPlace,
		&player.ObjectRejected, &player.PlaceRejected,
		&player.Points, &player.ConfirmedReady, &player.JoinedAt, &eliminatedAt,
	)
	if err != nil {
		return domain.Player{}, err
	}
	if targetID.Valid {
		id, err := uuid.Parse(targetID.String)
		if err != nil {
			return domain.Player{}, fmt.Errorf("invalid target id %q: %w", targetID.String, err)
		}
		player.TargetID = &id
	}
	player.TargetName = targetName.String
	player.AssignedObject = object.String
	player.AssignedPlace = place.String
	player.SuggestedObject = sObject.String
	player.SuggestedPlace = sPlace.String
	if eliminatedAt.Valid {
		t := eliminatedAt.Time
		player.EliminatedAt = &t
	}
	return player, nil
}

func scanClaim(row rowScanner) (domain.EliminationClaim, error) {
	var (
		claim          domain.EliminationClaim
		targetResponse sql.NullString
		witnesses      []string
		responsesJSON  []byte
	)
	err := row.Scan(
		&claim.ID, &claim.RoomCode, &claim.ClaimerID, &claim.TargetID, &claim.Status,
		&targetResponse, pq.Array(&witnesses), &responsesJSON, &claim.CreatedAt,
	)
	if err != nil {
		return domain.EliminationClaim{}, err
	}
	claim.TargetResponse = domain.ClaimResponse(targetResponse.String)
	claim.Witnesses, err = parseUUIDs(witnesses)
	if err != nil {
		return domain.EliminationClaim{}, err
	}
	claim.WitnessResponses, err = parseResponses(responsesJSON)
	if err != nil {
		return domain.EliminationClaim{}, err
	}
	return claim, nil
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]uuid.UUID, len(in))
	for i, s := range in {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", s, err)
		}
		out[i] = id
	}
	return out, nil
}

func uuidStrings(in []uuid.UUID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}

func parseResponses(raw []byte) (map[uuid.UUID]domain.ClaimResponse, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var byString map[string]domain.ClaimResponse
	if err := json.Unmarshal(raw, &byString); err != nil {
		return nil, fmt.Errorf("invalid witness responses: %w", err)
	}
	if len(byString) == 0 {
		return map[uuid.UUID]domain.ClaimResponse{}, nil
	}
	out := make(map[uuid.UUID]domain.ClaimResponse, len(byString))
	for k, v := range byString {
		id, err := uuid.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("invalid witness id %q: %w", k, err)
		}
		out[id] = v
	}
	return out, nil
}

func marshalResponses(in map[uuid.UUID]domain.ClaimResponse) ([]byte, error) {
	byString := make(map[string]domain.ClaimResponse, len(in))
	for k, v := range in {
		byString[k.String()] = v
	}
	return json.Marshal(byString)
}

func insertSystemMessageTx(ctx context.Context, tx *sql.Tx, roomCode, message string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO chat_messages (room_code, player_id, player_name, message, is_system_message)
		 VALUES ($1, $2, 'System', $3, TRUE)`,
		roomCode, domain.SystemSender, message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert system message: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
