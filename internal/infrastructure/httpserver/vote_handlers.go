package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
)

// maxBatchSize caps the number of post IDs accepted by GET /votes.
const maxBatchSize = 100

func (s *Server) toggleVote(c echo.Context) error {
	var req vote.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tweetId or userId")
	}

	allowed, remaining, limit, reset, rlErr := s.rateLimiter.Allow(c.Request().Context(), req.UserID)
	c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
	c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
	c.Response().Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", reset.Unix()))
	if rlErr != nil {
		if s.logger != nil {
			s.logger.WithError(rlErr).WithField("user_id", req.UserID).Warn("rate limiter error; allowing request (fail-open)")
		}
	} else if !allowed {
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	}

	status, err := s.voteSvc.ToggleVote(c.Request().Context(), req.TweetID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, status)
}

func (s *Server) getVotes(c echo.Context) error {
	idsParam := c.QueryParam("ids")
	if idsParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing ids parameter")
	}
	userID := c.QueryParam("userId")

	ids := strings.Split(idsParam, ",")
	if len(ids) > maxBatchSize {
		ids = ids[:maxBatchSize]
	}

	// Malformed IDs are skipped silently rather than failing the batch.
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if vote.ValidTweetID(id) {
			valid = append(valid, id)
		}
	}

	votes, err := s.voteSvc.GetVotes(c.Request().Context(), valid, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"votes": votes})
}

func (s *Server) getStatus(c echo.Context) error {
	tweetID := c.Param("tweetId")
	userID := c.Param("userId")

	if !vote.ValidTweetID(tweetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tweetId")
	}

	status, err := s.voteSvc.GetStatus(c.Request().Context(), tweetID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, status)
}
