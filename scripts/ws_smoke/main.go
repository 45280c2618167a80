package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"chessroom/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	room := flag.String("room", "", "room id to join; empty creates a new room")
	from := flag.String("from", "e2", "move origin square")
	to := flag.String("to", "e4", "move destination square")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(msgType string, data any) error {
		var payload json.RawMessage
		if data != nil {
			raw, marshalErr := json.Marshal(data)
			if marshalErr != nil {
				return fmt.Errorf("marshal %s: %w", msgType, marshalErr)
			}
			payload = raw
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", msgType, err)
		}
		return nil
	}

	roomID := *room
	var color string
	if roomID == "" {
		if err := send(proto.InboundTypeCreateRoom, nil); err != nil {
			return err
		}
	} else {
		if err := send(proto.InboundTypeJoinRoom, proto.RoomData{RoomID: roomID}); err != nil {
			return err
		}
	}

	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event,omitempty"`
			Data  json.RawMessage `json:"data,omitempty"`
			Error *proto.Error    `json:"error,omitempty"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("Received outbound: type=%s", outbound.Type)
		if outbound.Event != "" {
			fmt.Printf(" event=%s", outbound.Event)
		}
		fmt.Println()

		if outbound.Error != nil {
			return fmt.Errorf("server error: %s: %s", outbound.Error.Code, outbound.Error.Msg)
		}

		switch {
		case outbound.Type == proto.OutboundTypeAck && outbound.Event == proto.InboundTypeCreateRoom:
			var created proto.CreateRoomAck
			if err := json.Unmarshal(outbound.Data, &created); err != nil {
				return fmt.Errorf("unmarshal create ack: %w", err)
			}
			if !created.OK {
				return fmt.Errorf("createRoom rejected: %s", created.Err)
			}
			fmt.Printf("Created: roomId=%s color=%s fen=%q\n", created.RoomID, created.Color, created.FEN)
			fmt.Println("Waiting for an opponent to join...")
			roomID = created.RoomID
			color = created.Color

		case outbound.Type == proto.OutboundTypeAck && outbound.Event == proto.InboundTypeJoinRoom:
			var joined proto.JoinRoomAck
			if err := json.Unmarshal(outbound.Data, &joined); err != nil {
				return fmt.Errorf("unmarshal join ack: %w", err)
			}
			if !joined.OK {
				return fmt.Errorf("joinRoom rejected: %s", joined.Err)
			}
			if joined.Spectator {
				fmt.Printf("Joined as spectator: fen=%q\n", joined.FEN)
			} else {
				color = *joined.Color
				fmt.Printf("Joined: color=%s fen=%q\n", color, joined.FEN)
			}

		case outbound.Type == proto.OutboundTypeAck && (outbound.Event == proto.InboundTypeMakeMove || outbound.Event == proto.InboundTypeMove):
			var moved proto.MoveAck
			if err := json.Unmarshal(outbound.Data, &moved); err != nil {
				return fmt.Errorf("unmarshal move ack: %w", err)
			}
			if !moved.OK {
				return fmt.Errorf("makeMove rejected: %s", moved.Err)
			}
			fmt.Println("Move acknowledged")

		case outbound.Event == proto.EventStartGame:
			var start proto.StartGameEvent
			if err := json.Unmarshal(outbound.Data, &start); err != nil {
				return fmt.Errorf("unmarshal startGame: %w", err)
			}
			fmt.Printf("StartGame: players=%d fen=%q\n", start.PlayersCount, start.FEN)
			// White opens; black and spectators just watch for the move.
			if color == "w" {
				if err := send(proto.InboundTypeMakeMove, proto.MoveData{
					RoomID: roomID, From: *from, To: *to,
				}); err != nil {
					return err
				}
			}

		case outbound.Event == proto.EventMoveMade:
			var mv proto.MoveMadeEvent
			if err := json.Unmarshal(outbound.Data, &mv); err != nil {
				return fmt.Errorf("unmarshal moveMade: %w", err)
			}
			fmt.Printf("MoveMade: %s (%s-%s) fen=%q checkmate=%v draw=%v check=%v\n",
				mv.SAN, mv.From, mv.To, mv.FEN, mv.Checkmate, mv.Draw, mv.InCheck)
			return nil

		case outbound.Event == proto.EventPlayerLeft:
			var left proto.PlayerLeftEvent
			if err := json.Unmarshal(outbound.Data, &left); err != nil {
				return fmt.Errorf("unmarshal playerLeft: %w", err)
			}
			fmt.Printf("PlayerLeft: players=%d\n", left.PlayersCount)

		default:
			// keep looping for moveMade
		}
	}
}
