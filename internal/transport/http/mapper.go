package http

import (
	"encoding/json"

	"chessroom/internal/core"
	"chessroom/internal/proto"
)

func ack(requestType string, data any) proto.Outbound {
	return proto.Outbound{Type: proto.OutboundTypeAck, Event: requestType, Data: data}
}

func badRequest(msg string) proto.Outbound {
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: core.ErrCodeBadRequest, Msg: msg},
	}
}

// dispatch maps one inbound message to a coordinator intent and returns the
// acknowledgement to write back. A non-nil error means the payload was
// unreadable and the connection should drop.
func dispatch(hub *core.Hub, client *core.Client, inbound proto.Inbound) (proto.Outbound, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		res, cerr := hub.CreateRoom(client)
		if cerr != nil {
			return ack(inbound.Type, proto.CreateRoomAck{Err: cerr.Message}), nil
		}
		return ack(inbound.Type, proto.CreateRoomAck{
			OK:     true,
			RoomID: res.RoomID,
			Color:  string(res.Color),
			FEN:    res.FEN,
		}), nil

	case proto.InboundTypeJoinRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, err
		}
		if data.RoomID == "" {
			return badRequest("roomId is required"), nil
		}
		res, cerr := hub.JoinRoom(client, data.RoomID)
		if cerr != nil {
			return ack(inbound.Type, proto.JoinRoomAck{Err: cerr.Message}), nil
		}
		joinAck := proto.JoinRoomAck{OK: true, FEN: res.FEN, Spectator: res.Spectator}
		if !res.Spectator {
			color := string(res.Color)
			joinAck.Color = &color
		}
		return ack(inbound.Type, joinAck), nil

	case proto.InboundTypeMakeMove, proto.InboundTypeMove:
		var data proto.MoveData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, err
		}
		if data.RoomID == "" || data.From == "" || data.To == "" {
			return badRequest("roomId, from and to are required"), nil
		}
		if _, cerr := hub.Move(client, data.RoomID, data.From, data.To, data.Promotion); cerr != nil {
			return ack(inbound.Type, proto.MoveAck{Err: cerr.Message}), nil
		}
		return ack(inbound.Type, proto.MoveAck{OK: true}), nil

	case proto.InboundTypeLeaveRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, err
		}
		if data.RoomID == "" {
			return badRequest("roomId is required"), nil
		}
		if cerr := hub.LeaveRoom(client, data.RoomID); cerr != nil {
			return ack(inbound.Type, proto.LeaveAck{Err: cerr.Message}), nil
		}
		return ack(inbound.Type, proto.LeaveAck{OK: true}), nil

	case proto.InboundTypeGetFen:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, err
		}
		if data.RoomID == "" {
			return badRequest("roomId is required"), nil
		}
		res, cerr := hub.Fen(data.RoomID)
		if cerr != nil {
			return ack(inbound.Type, proto.FenAck{Err: cerr.Message}), nil
		}
		return ack(inbound.Type, proto.FenAck{OK: true, FEN: res.FEN, Turn: string(res.Turn)}), nil

	default:
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: "invalid_message", Msg: "unknown message type"},
		}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventStartGame:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventStartGame,
			Data: proto.StartGameEvent{
				FEN:          event.FEN,
				PlayersCount: event.PlayersCount,
			},
		}
	case core.EventMoveMade:
		if event.Move == nil {
			return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventMoveMade}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventMoveMade,
			Data: proto.MoveMadeEvent{
				From:      event.Move.From,
				To:        event.Move.To,
				SAN:       event.Move.SAN,
				FEN:       event.Move.FEN,
				Checkmate: event.Move.Checkmate,
				Draw:      event.Move.Draw,
				InCheck:   event.Move.Check,
			},
		}
	case core.EventPlayerLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPlayerLeft,
			Data: proto.PlayerLeftEvent{
				PlayersCount: event.PlayersCount,
			},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
