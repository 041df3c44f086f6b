package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/aristath/stockfolio/internal/reliability"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers serves process status and backup operations
type SystemHandlers struct {
	backupService *reliability.BackupService // nil when backups are not configured
	startedAt     time.Time
	log           zerolog.Logger
}

// NewSystemHandlers creates new system handlers
func NewSystemHandlers(backupService *reliability.BackupService, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		backupService: backupService,
		startedAt:     time.Now(),
		log:           log.With().Str("handler", "system").Logger(),
	}
}

// HandleSystemStatus reports process uptime and host resource usage
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.getSystemStats()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"cpu_percent":    cpuPercent,
		"memory_percent": memPercent,
		"goroutines":     runtime.NumGoroutine(),
		"backup_enabled": h.backupService != nil,
	})
}

// HandleBackup checkpoints the portfolio database and uploads a snapshot.
// Responds 503 when no backup target is configured.
func (h *SystemHandlers) HandleBackup(w http.ResponseWriter, r *http.Request) {
	if h.backupService == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "Backups are not configured",
		})
		return
	}

	key, err := h.backupService.BackupNow(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Backup failed")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Backup failed",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"key":    key,
	})
}

// HandleListBackups lists stored backups, newest first
func (h *SystemHandlers) HandleListBackups(w http.ResponseWriter, r *http.Request) {
	if h.backupService == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "Backups are not configured",
		})
		return
	}

	backups, err := h.backupService.ListBackups(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list backups")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to list backups",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, backups)
}

// getSystemStats samples CPU and RAM usage percentages. The CPU sample uses
// a 100ms window so the handler stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
