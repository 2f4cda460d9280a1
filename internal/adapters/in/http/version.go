package http

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// VersionInfo describes the running service for the /version endpoint.
type VersionInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	GoVersion   string `json:"goVersion"`
	Environment string `json:"environment"`
}

// GetVersion handles GET /version.
func (s *Server) GetVersion(ctx echo.Context) error {
	info := s.version
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}

	return ctx.JSON(http.StatusOK, info)
}
