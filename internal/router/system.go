package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/examtrack/examtrack-api/internal/config"
)

const (
	currentAppVersion = "1.5.0"
	minimumAppVersion = "1.5.0"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := config.Ping(r.Context()); err != nil {
		config.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": err.Error(),
		})
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

type versionResponse struct {
	CurrentVersion string  `json:"current_version"`
	MinimumVersion string  `json:"minimum_version"`
	UpdateRequired bool    `json:"update_required"`
	UpdateMessage  *string `json:"update_message"`
}

// VersionCheck tells clients whether their build is too old to keep using.
func VersionCheck(w http.ResponseWriter, r *http.Request) {
	resp := versionResponse{
		CurrentVersion: currentAppVersion,
		MinimumVersion: minimumAppVersion,
	}

	if clientVersion := r.URL.Query().Get("client_version"); clientVersion != "" {
		if compareVersions(clientVersion, minimumAppVersion) < 0 {
			msg := "A new version (" + currentAppVersion + ") is required. Please refresh to get the latest updates."
			resp.UpdateRequired = true
			resp.UpdateMessage = &msg
		}
	}

	config.JSON(w, http.StatusOK, resp)
}

// compareVersions orders dotted numeric versions; missing parts count as 0,
// non-numeric parts count as 0.
func compareVersions(v1, v2 string) int {
	p1 := strings.Split(v1, ".")
	p2 := strings.Split(v2, ".")

	n := len(p1)
	if len(p2) > n {
		n = len(p2)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(p1) {
			a, _ = strconv.Atoi(p1[i])
		}
		if i < len(p2) {
			b, _ = strconv.Atoi(p2[i])
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}
