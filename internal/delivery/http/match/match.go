package http_match

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/xpekfdls/yacht/core/internal/delivery/http/common"
	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

type Controller struct {
	usecase *usecase_match.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_match.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("", c.create)
		rooms.POST("/:room_code/join", c.join)
		rooms.POST("/:room_code/leave", c.leave)
		rooms.GET("/:room_code/status", c.status)
		rooms.GET("/:room_code/snapshot", c.snapshot)
	}
}

type CreateRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

type CreateResponseDTO struct {
	RoomCode string `json:"room_code"`
}

// create allocates a room and hands the creator their participant
// token via the X-user-token header.
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	result, err := c.usecase.Create(ctx, req.Name)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_match.ErrRoomsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "unavailable",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Header("X-user-token", result.ParticipantID.String())
	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		RoomCode: string(result.RoomCode),
	})
}

type JoinRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

type JoinResponseDTO struct {
	Participants []usecase_match.ParticipantView `json:"participants"`
	Turn         string                          `json:"turn,omitempty"`
	Phase        model.Phase                     `json:"phase"`
}

// join admits the second participant; success also starts the match.
func (c *Controller) join(ctx *gin.Context) {
	code := model.NormalizeRoomCode(ctx.Param("room_code"))

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	result, err := c.usecase.Join(ctx, code, req.Name)
	if err != nil {
		c.logger.Error("failed to join room", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_match.ErrRoomNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
		case errors.Is(err, usecase_match.ErrRoomFull):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "room full",
			})
		case errors.Is(err, usecase_match.ErrMatchAlreadyInProgress):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "match already in progress",
			})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Header("X-user-token", result.ParticipantID.String())
	ctx.JSON(http.StatusOK, JoinResponseDTO{
		Participants: result.Participants,
		Turn:         result.Turn,
		Phase:        result.Phase,
	})
}

// leave removes the calling participant; transports that lose a socket
// use the same path through the websocket controller.
func (c *Controller) leave(ctx *gin.Context) {
	code := model.NormalizeRoomCode(ctx.Param("room_code"))

	userToken := ctx.GetHeader("X-user-token")
	if userToken == "" {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "X-user-token not found",
		})
		return
	}
	participantID, err := uuid.Parse(userToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "invalid X-user-token",
		})
		return
	}

	if _, err := c.usecase.Leave(ctx, code, participantID); err != nil {
		if errors.Is(err, usecase_match.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to leave room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

type StatusResponseDTO struct {
	Status model.Phase `json:"status"`
}

func (c *Controller) status(ctx *gin.Context) {
	code := model.NormalizeRoomCode(ctx.Param("room_code"))

	snap, err := c.usecase.Snapshot(ctx, code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{Status: snap.Phase})
}

// snapshot serves the full room view for late renderers.
func (c *Controller) snapshot(ctx *gin.Context) {
	code := model.NormalizeRoomCode(ctx.Param("room_code"))

	snap, err := c.usecase.Snapshot(ctx, code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, snap)
}
