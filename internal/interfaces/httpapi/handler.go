package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/checkball/checkball/internal/platform/logging"
	"github.com/checkball/checkball/internal/usecase"
)

var (
	sportNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	teamNamePattern  = regexp.MustCompile(`^[a-zA-Z0-9\s'.&-]+$`)
)

type Handler struct {
	scoreService   *usecase.ScoreService
	detailsService *usecase.DetailsService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	scoreService *usecase.ScoreService,
	detailsService *usecase.DetailsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New()
	_ = v.RegisterValidation("sportname", func(fl validator.FieldLevel) bool {
		return sportNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("teamname", func(fl validator.FieldLevel) bool {
		return teamNamePattern.MatchString(fl.Field().String())
	})

	return &Handler{
		scoreService:   scoreService,
		detailsService: detailsService,
		logger:         logger,
		validator:      v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.scoreService.ListSports())
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	sportKey := strings.TrimSpace(r.PathValue("sport"))
	if err := h.validateRequest(ctx, sportRequest{Sport: sportKey}); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.scoreService.ListTeams(sportKey)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "sport", sportKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, listTeamsDTO{
		Sport: sportKey,
		Teams: teams,
	})
}

func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScores")
	defer span.End()

	req := scoreQueryRequest{
		Sport: strings.TrimSpace(r.URL.Query().Get("sport")),
		Team:  strings.TrimSpace(r.URL.Query().Get("team")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.scoreService.GetScores(ctx, req.Sport, req.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "get scores failed", "sport", req.Sport, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshot)
}

func (h *Handler) GetGameDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameDetails")
	defer span.End()

	req := scoreQueryRequest{
		Sport: strings.TrimSpace(r.URL.Query().Get("sport")),
		Team:  strings.TrimSpace(r.URL.Query().Get("team")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.detailsService.GetGameDetails(ctx, req.Sport, req.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "get game details failed", "sport", req.Sport, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, details)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type sportRequest struct {
	Sport string `validate:"required,max=50,sportname"`
}

type scoreQueryRequest struct {
	Sport string `validate:"required,max=50,sportname"`
	Team  string `validate:"required,max=100,teamname"`
}

type listTeamsDTO struct {
	Sport string   `json:"sport"`
	Teams []string `json:"teams"`
}
