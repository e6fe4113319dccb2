package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"streetlife/internal/app/action"
	"streetlife/internal/app/catalog"
	"streetlife/internal/app/history"
	"streetlife/internal/app/player"
	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Identity resolution is external to the engine; the routing layer trusts
// this header to carry the authenticated user id.
const userIDHeader = "X-User-ID"

type Handler struct {
	CreateUC  player.CreateUseCase
	InfoUC    player.InfoUseCase
	CatalogUC catalog.UseCase
	ActionUC  action.UseCase
	HistoryUC history.UseCase
	KPI       kpiSnapshotProvider
}

// categoryRoutes maps URL path segments to catalog categories, matching the
// original game API: GET lists the category, POST performs the action.
var categoryRoutes = []struct {
	Path     string
	Category life.Category
}{
	{"homes", life.CategoryHome},
	{"skills", life.CategorySkill},
	{"transport", life.CategoryTransport},
	{"street", life.CategoryStreet},
	{"work", life.CategoryWork},
	{"food", life.CategoryFood},
	{"health", life.CategoryHealth},
	{"leisure", life.CategoryLeisure},
	{"business", life.CategoryBusiness},
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.GET("/info", h.info)
	game.POST("/player", h.createPlayer)
	game.GET("/history", h.history)
	for _, route := range categoryRoutes {
		game.GET("/"+route.Path, h.list(route.Category))
		game.POST("/"+route.Path, h.act(route.Category))
	}

	s.GET("/ops/kpi", h.kpi)
}

type performRequest struct {
	ID int64 `json:"id"`
}

func (h Handler) info(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.InfoUC.Execute(c, player.InfoRequest{UserID: userID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createPlayer(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.CreateUC.Execute(c, player.CreateRequest{UserID: userID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.HistoryUC.Execute(c, history.Request{UserID: userID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) list(cat life.Category) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if _, err := requireUser(ctx); err != nil {
			writeError(ctx, err)
			return
		}
		resp, err := h.CatalogUC.Execute(c, catalog.Request{Category: cat})
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	}
}

func (h Handler) act(cat life.Category) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		userID, err := requireUser(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}
		var body performRequest
		if err := decodeJSON(ctx, &body); err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
			return
		}
		resp, err := h.ActionUC.Execute(c, action.Request{
			UserID:   userID,
			Category: cat,
			ItemID:   body.ID,
		})
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	}
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingUserHeader = errors.New("missing x-user-id header")

func requireUser(ctx *app.RequestContext) (int64, error) {
	raw := strings.TrimSpace(string(ctx.GetHeader(userIDHeader)))
	if raw == "" {
		return 0, ErrMissingUserHeader
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrMissingUserHeader
	}
	return userID, nil
}

// writeError keeps the status mapping of the original game API: missing
// player and failed preconditions are 403, duplicates 409, absent records
// 404. Catalog data bugs are logged loudly and surfaced as 500.
func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingUserHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_user_id", err.Error())
	case errors.Is(err, action.ErrPlayerNotFound):
		writeErrorBody(ctx, consts.StatusForbidden, "player_not_found", err.Error())
	case errors.Is(err, player.ErrPlayerExists):
		writeErrorBody(ctx, consts.StatusBadRequest, "player_exists", err.Error())
	case errors.Is(err, life.ErrAlreadyOwned):
		writeErrorBody(ctx, consts.StatusConflict, "already_owned", err.Error())
	case errors.Is(err, life.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusForbidden, "insufficient_funds", err.Error())
	case errors.Is(err, life.ErrInsufficientAuthority):
		writeErrorBody(ctx, consts.StatusForbidden, "insufficient_authority", err.Error())
	case errors.Is(err, life.ErrInsufficientPossession):
		writeErrorBody(ctx, consts.StatusForbidden, "insufficient_possession", possessionMessage(err))
	case errors.Is(err, life.ErrBadCatalogData):
		log.Printf("catalog data error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "catalog_misconfigured", "catalog item misconfigured")
	case errors.Is(err, action.ErrItemNotFound), errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, player.ErrInvalidRequest),
		errors.Is(err, catalog.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func possessionMessage(err error) string {
	var perr *life.PossessionError
	if errors.As(err, &perr) {
		return "missing required " + string(perr.Category)
	}
	return err.Error()
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
