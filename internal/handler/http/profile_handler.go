package httphandler

import (
	"github.com/labstack/echo/v4"

	"github.com/stkrizh/conduit/internal/application/appcore"
	profileapp "github.com/stkrizh/conduit/internal/application/profile"
	"github.com/stkrizh/conduit/internal/domain/profile"
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
	"github.com/stkrizh/conduit/internal/middleware"
)

// ProfileResponse represents a profile in API responses. The following flag
// is always relative to the requesting user.
type ProfileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio,omitempty"`
	Image     string `json:"image,omitempty"`
	Following bool   `json:"following"`
}

// ToProfileResponse converts a profile projection to its API shape.
func ToProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: p.IsFollowing,
	}
}

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	getProfile appcore.UseCase[profileapp.GetProfileQuery, profileapp.Result]
	follow     appcore.UseCase[profileapp.FollowCommand, profileapp.Result]
	unfollow   appcore.UseCase[profileapp.UnfollowCommand, profileapp.Result]
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(
	getProfile appcore.UseCase[profileapp.GetProfileQuery, profileapp.Result],
	follow appcore.UseCase[profileapp.FollowCommand, profileapp.Result],
	unfollow appcore.UseCase[profileapp.UnfollowCommand, profileapp.Result],
) *ProfileHandler {
	return &ProfileHandler{
		getProfile: getProfile,
		follow:     follow,
		unfollow:   unfollow,
	}
}

// RegisterRoutes registers profile routes. Viewing a profile works for
// anonymous visitors too, so it only gets the optional variant.
func (h *ProfileHandler) RegisterRoutes(g *echo.Group, authRequired, authOptional echo.MiddlewareFunc) {
	g.GET("/profiles/:username", h.GetProfile, authOptional)
	g.POST("/profiles/:username/follow", h.Follow, authRequired)
	g.DELETE("/profiles/:username/follow", h.Unfollow, authRequired)
}

// GetProfile handles GET /api/profiles/:username.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	query := profileapp.GetProfileQuery{
		Username: c.Param("username"),
		Viewer:   middleware.GetUserID(c),
	}

	result, err := h.getProfile.Execute(c.Request().Context(), query)
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	if result.Profile == nil {
		return httpserver.RespondNotFound(c, "profile not found")
	}

	return httpserver.RespondOK(c, ToProfileResponse(result.Profile))
}

// Follow handles POST /api/profiles/:username/follow.
func (h *ProfileHandler) Follow(c echo.Context) error {
	cmd := profileapp.FollowCommand{
		Username: c.Param("username"),
	}.WithUserID(middleware.GetUserID(c))

	result, err := h.follow.Execute(c.Request().Context(), cmd)
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	if result.Profile == nil {
		return httpserver.RespondNotFound(c, "profile not found")
	}

	return httpserver.RespondOK(c, ToProfileResponse(result.Profile))
}

// Unfollow handles DELETE /api/profiles/:username/follow.
func (h *ProfileHandler) Unfollow(c echo.Context) error {
	cmd := profileapp.UnfollowCommand{
		Username: c.Param("username"),
	}.WithUserID(middleware.GetUserID(c))

	result, err := h.unfollow.Execute(c.Request().Context(), cmd)
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	if result.Profile == nil {
		return httpserver.RespondNotFound(c, "profile not found")
	}

	return httpserver.RespondOK(c, ToProfileResponse(result.Profile))
}
