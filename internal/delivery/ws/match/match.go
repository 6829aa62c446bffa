package ws_match

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_common "github.com/xpekfdls/yacht/core/internal/delivery/http/common"
	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

const (
	opRoll           = "roll"
	opHold           = "hold"
	opSelectCategory = "select_category"
	opLeave          = "leave"
)

// inboundOp is what a participant sends over the socket.
type inboundOp struct {
	Op       string `json:"op"`
	DieIndex *int   `json:"die_index,omitempty"`
	Category string `json:"category,omitempty"`
}

type Controller struct {
	hub      *Hub
	usecase  *usecase_match.Usecase
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub, usecase *usecase_match.Usecase) *Controller {
	return &Controller{
		hub:     hub,
		usecase: usecase,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/rooms/:room_code/ws", c.serve)
}

// serve upgrades the connection and runs the read loop until the
// participant leaves or the socket drops. A drop is reported to the
// coordinator as a plain leave.
func (c *Controller) serve(ctx *gin.Context) {
	code := model.NormalizeRoomCode(ctx.Param("room_code"))

	participantID, err := uuid.Parse(ctx.Query("token"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "invalid participant token",
		})
		return
	}

	snap, err := c.usecase.Snapshot(ctx, code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}
	if !memberOf(snap, participantID) {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "unauthorized",
		})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		Hub:           c.hub,
		Conn:          conn,
		Send:          make(chan []byte, 16),
		RoomCode:      code,
		ParticipantID: participantID,
	}
	c.hub.RegisterClient(client)
	go c.hub.StartClientWriting(client)

	c.sendEvent(client, usecase_match.Event{Type: usecase_match.EventSnapshot, Payload: snap})

	c.readLoop(client)
}

func (c *Controller) readLoop(client *Client) {
	left := false
	defer func() {
		c.hub.RemoveClient(client)
		client.Conn.Close()
		if !left {
			// Socket dropped without an explicit leave; the disconnect is
			// the leave.
			_, err := c.usecase.Leave(context.Background(), client.RoomCode, client.ParticipantID)
			if err != nil && !errors.Is(err, usecase_match.ErrRoomNotFound) {
				c.logger.Error("leave on disconnect failed", slog.String("error", err.Error()))
			}
		}
	}()

	for {
		op := inboundOp{}
		if err := client.Conn.ReadJSON(&op); err != nil {
			return
		}
		if op.Op == opLeave {
			left = true
			if _, err := c.usecase.Leave(context.Background(), client.RoomCode, client.ParticipantID); err != nil {
				c.reject(client, err)
			}
			return
		}
		if err := c.dispatch(client, op); err != nil {
			c.reject(client, err)
		}
	}
}

func (c *Controller) dispatch(client *Client, op inboundOp) error {
	ctx := context.Background()

	switch op.Op {
	case opRoll:
		_, err := c.usecase.Roll(ctx, client.RoomCode, client.ParticipantID)
		return err
	case opHold:
		if op.DieIndex == nil {
			return usecase_match.ErrInvalidDieIndex
		}
		_, err := c.usecase.ToggleHold(ctx, client.RoomCode, client.ParticipantID, *op.DieIndex)
		return err
	case opSelectCategory:
		_, err := c.usecase.SelectCategory(ctx, client.RoomCode, client.ParticipantID, op.Category)
		return err
	default:
		c.logger.Info("unknown operation", "op", op.Op, "room", client.RoomCode)
		return nil
	}
}

// reject notifies only the offending requester; the room never sees a
// failed operation.
func (c *Controller) reject(client *Client, err error) {
	c.sendEvent(client, usecase_match.Event{
		Type: usecase_match.EventOperationRejected,
		Payload: usecase_match.RejectedPayload{
			ErrorKind: usecase_match.Kind(err),
			Reason:    err.Error(),
		},
	})
}

func (c *Controller) sendEvent(client *Client, event usecase_match.Event) {
	messageBytes, _ := json.Marshal(event)
	client.TrySend(messageBytes)
}

func memberOf(snap usecase_match.Snapshot, id uuid.UUID) bool {
	for _, p := range snap.Participants {
		if p.ID == id.String() {
			return true
		}
	}
	return false
}
